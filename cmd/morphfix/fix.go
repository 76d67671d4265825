package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"honnef.co/go/morph"
	"honnef.co/go/morph/svgpath"
)

func fixCmd(g *globalFlags) *cobra.Command {
	var pf pathFlags
	c := &cobra.Command{
		Use:   "fix",
		Short: "Reorder, subdivide and convert commands so both paths match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := pf.job(cmd, g)
			if err != nil {
				return err
			}
			res, err := morph.AutoFix(j.cfg.SubPath, j.from, j.to, j.options())
			if res.From.Len() > 0 {
				j.log.Info("fixed",
					"subpath", j.cfg.SubPath,
					"candidate", res.Candidate.Index,
					"score", res.Score,
					"from_inserted", res.FromInserted,
					"to_inserted", res.ToInserted,
					"status", res.Status)
				writeResult(cmd.OutOrStdout(), res)
			}
			return err
		},
	}
	pf.register(c)
	return c
}

func convertCmd(g *globalFlags) *cobra.Command {
	var pf pathFlags
	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert command kinds of two paths with equally long subpaths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := pf.job(cmd, g)
			if err != nil {
				return err
			}
			res, err := morph.AutoConvert(j.cfg.SubPath, j.from, j.to, j.options())
			if res.From.Len() > 0 {
				j.log.Info("converted", "subpath", j.cfg.SubPath, "status", res.Status)
				writeResult(cmd.OutOrStdout(), res)
			}
			return err
		},
	}
	pf.register(c)
	return c
}

func writeResult(w io.Writer, res morph.Result) {
	fmt.Fprintf(w, "from: %s\n", svgpath.Format(res.From, svgpath.Options{}))
	fmt.Fprintf(w, "to:   %s\n", svgpath.Format(res.To, svgpath.Options{}))
	if res.Status == morph.Irreconcilable {
		fmt.Fprintf(w, "irreconcilable at commands %v\n", res.Mismatches)
	}
}
