package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/morph"
	"honnef.co/go/morph/internal/config"
	"honnef.co/go/morph/internal/logger"
	"honnef.co/go/morph/svgpath"
)

type globalFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "morphfix",
		Short:        "Make two path outlines compatible for morphing",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "log every reconciliation step")

	cmd.AddCommand(fixCmd(&g), convertCmd(&g), alignCmd(&g))
	return cmd
}

// pathFlags are the flags shared by all subcommands.
type pathFlags struct {
	from     string
	to       string
	subPath  int
	viewport string
	workers  int
	strict   bool
}

func (pf *pathFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&pf.from, "from", "", "SVG path data of the source shape (required)")
	c.Flags().StringVar(&pf.to, "to", "", "SVG path data of the target shape (required)")
	c.Flags().IntVar(&pf.subPath, "subpath", 0, "index of the subpath to reconcile")
	c.Flags().StringVar(&pf.viewport, "viewport", "", "viewport as WxH, scales distances relative to a 24x24 icon")
	c.Flags().IntVar(&pf.workers, "workers", 1, "number of candidates aligned concurrently")
	c.Flags().BoolVar(&pf.strict, "strict", false, "fail if some commands cannot be made compatible")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
}

// job is everything a subcommand needs to run.
type job struct {
	cfg      config.Config
	log      *slog.Logger
	from, to morph.Path
}

func (pf *pathFlags) job(c *cobra.Command, g *globalFlags) (job, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		cfg, err = config.Load(g.configPath)
		if err != nil {
			return job{}, err
		}
	}

	flags := c.Flags()
	if flags.Changed("subpath") {
		if pf.subPath < 0 {
			return job{}, fmt.Errorf("--subpath must not be negative, got %d", pf.subPath)
		}
		cfg.SubPath = pf.subPath
	}
	if flags.Changed("viewport") {
		w, h, err := parseViewport(pf.viewport)
		if err != nil {
			return job{}, err
		}
		cfg.DistanceScale = morph.ScaleForViewport(w, h)
	}
	if flags.Changed("workers") {
		cfg.Workers = pf.workers
	}
	if flags.Changed("strict") {
		cfg.Strict = pf.strict
	}
	if g.debug {
		cfg.Log.Level = slog.LevelDebug
	}

	from, err := svgpath.Parse(pf.from)
	if err != nil {
		return job{}, fmt.Errorf("parsing --from: %w", err)
	}
	to, err := svgpath.Parse(pf.to)
	if err != nil {
		return job{}, fmt.Errorf("parsing --to: %w", err)
	}

	return job{
		cfg:  cfg,
		log:  logger.New(c.ErrOrStderr(), cfg.Log),
		from: from,
		to:   to,
	}, nil
}

func (j job) options() morph.Options { return j.cfg.Options(j.log) }

func parseViewport(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("--viewport must be WxH, got %q", s)
	}
	w, err = strconv.ParseFloat(ws, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("--viewport width: %w", err)
	}
	h, err = strconv.ParseFloat(hs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("--viewport height: %w", err)
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("--viewport must not be negative, got %q", s)
	}
	return w, h, nil
}
