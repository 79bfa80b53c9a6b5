package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/maisem/aoc"
	"github.com/maisem/aoc/internal/config"
)

type app struct {
	out io.Writer

	configPath string
	debug      bool

	cfg    *config.Config
	logger *zap.Logger
	undo   func()
}

// execute runs the command line and releases the logger afterwards.
func execute(out io.Writer, args []string) error {
	a := &app{out: out}
	defer a.teardown()
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Run Advent of Code solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	cmd.SetOut(a.out)
	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "path to the YAML config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.AddCommand(a.runCmd(), a.listCmd())
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if a.debug || cfg.Debug {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.undo = zap.ReplaceGlobals(a.logger)
	aoc.SetParallelism(cfg.Workers)
	return nil
}

func (a *app) teardown() {
	if a.logger == nil {
		return
	}
	_ = a.logger.Sync()
	a.undo()
	a.logger = nil
}

func (a *app) runCmd() *cobra.Command {
	var (
		day        int
		part       string
		onlySample bool
		skipSample bool
	)
	c := &cobra.Command{
		Use:   "run",
		Short: "Run one day, or every day, against the samples and the puzzle input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := &aoc.Runner{
				Year:   a.cfg.Year,
				Out:    a.out,
				Logger: a.logger,
				Inputs: &aoc.Inputs{
					CacheDir: a.cfg.CacheDir,
					BaseURL:  a.cfg.BaseURL,
					Session:  aoc.SessionFile(a.cfg.SessionFile),
				},
				Part:       part,
				OnlySample: onlySample,
				SkipSample: skipSample,
				// A single answer is printed bare so it can be piped.
				Quiet: day != 0 && part != "",
			}
			if day == 0 {
				return r.Run(cmd.Context())
			}
			return r.Run(cmd.Context(), day)
		},
	}
	c.Flags().IntVarP(&day, "day", "d", 0, "day to run; all days when 0")
	c.Flags().StringVarP(&part, "part", "p", "", "part to run, e.g. 1 or 2")
	c.Flags().BoolVar(&onlySample, "sample", false, "only check the samples")
	c.Flags().BoolVar(&skipSample, "skip-sample", false, "do not check the samples")
	c.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	return c
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range aoc.Days() {
				var parts []string
				for _, p := range d.Parts {
					s := p.Part
					if _, _, ok := d.Sample(p); ok {
						s += "*"
					}
					parts = append(parts, s)
				}
				input := "no input"
				if d.HasInput() {
					input = "embedded input"
				}
				fmt.Fprintf(a.out, "day %2d: parts %s (%s)\n", d.Num, strings.Join(parts, ", "), input)
			}
			return nil
		},
	}
}
