package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"honnef.co/go/morph"
	"honnef.co/go/morph/align"
)

func alignCmd(g *globalFlags) *cobra.Command {
	var pf pathFlags
	var dump bool
	c := &cobra.Command{
		Use:   "align",
		Short: "Show how the commands of both paths are paired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := pf.job(cmd, g)
			if err != nil {
				return err
			}
			opts := j.options()
			// Report the alignment even if it can't be fully reconciled.
			opts.Strict = false
			res, err := morph.AutoFix(j.cfg.SubPath, j.from, j.to, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(out, res)
				return nil
			}
			fmt.Fprintf(out, "candidate %d (shift %d, reversed %t), score %g\n",
				res.Candidate.Index, res.Candidate.Shift, res.Candidate.Reversed, res.Score)
			fmt.Fprintln(out, alignmentTable(res.Alignment).Render())
			return nil
		},
	}
	pf.register(c)
	c.Flags().BoolVar(&dump, "dump", false, "dump the complete result")
	return c
}

func alignmentTable(al align.Alignment[morph.Command]) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "from", "to").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for k := range al.Len() {
		t.Row(strconv.Itoa(k), al.A[k].String(), al.B[k].String())
	}
	return t
}
