package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/containerd/containerd/log"
	"github.com/elchead/knapsack-solver/pkg/config"
	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/elchead/knapsack-solver/pkg/parser"
	"github.com/elchead/knapsack-solver/pkg/report"
	"github.com/elchead/knapsack-solver/pkg/solver"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ErrInvalidSolution = errors.New("solution exceeds capacity")

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "knapsack [flags] FILE...",
		Short: "Solve 0/1 knapsack instances exactly or with a greedy heuristic",
		Long: `Each input line is "id n capacity w1 p1 ... wn pn" with at most 32 items.
Solutions are printed as "id n capacity strategy price weight elapsed_ms bits...".`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadEnv(envFile); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(v.GetString("log_level"))
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file with KNAPSACK_* and INFLUXDB_TOKEN variables")
	flags.String("strategy", config.StrategyBoth, "bruteforce, heuristic or both")
	flags.String("order", "ascending", "density sort order of the heuristic: ascending or descending")
	flags.String("log-level", "info", "logrus log level")
	flags.String("influx-url", "", "InfluxDB url; solution metrics are exported when set")
	flags.String("influx-org", "", "InfluxDB organization")
	flags.String("influx-bucket", "default", "InfluxDB bucket")

	config.SetDefaults(v)
	for key, flag := range map[string]string{
		"strategy":      "strategy",
		"order":         "order",
		"log_level":     "log-level",
		"influx.url":    "influx-url",
		"influx.org":    "influx-org",
		"influx.bucket": "influx-bucket",
	} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}
	return cmd
}

func run(ctx context.Context, cfg config.Config, files []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}
	s := solver.NewWithOrder(cfg.SortOrder())

	reporters := report.MultiReporter{report.TextReporter{W: out}}
	if cfg.Influx.Enabled() {
		influx := report.NewInfluxReporter(cfg.Influx.URL, cfg.Influx.Token, cfg.Influx.Org, cfg.Influx.Bucket)
		defer influx.Close()
		reporters = append(reporters, influx)
	}

	for _, file := range files {
		instances, err := parser.ParseFile(file)
		if err != nil {
			return err
		}
		log.L.Infof("solving %d instances from %s with %v", len(instances), file, strategies)
		for _, k := range instances {
			if err := solveInstance(ctx, s, k, strategies, reporters, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func solveInstance(ctx context.Context, s *solver.Solver, k knapsack.Knapsack, strategies []solver.Strategy, r report.Reporter, out io.Writer) error {
	solutions := make(map[solver.Strategy]solver.Solution, len(strategies))
	for _, strategy := range strategies {
		sol, err := s.Solve(k, strategy)
		if err != nil {
			return err
		}
		if !solver.Validate(sol, k) {
			return errors.Wrapf(ErrInvalidSolution, "knapsack %d (%s): weight %d > capacity %d", k.ID, strategy, sol.Weight, k.Capacity)
		}
		if err := r.Report(ctx, k, sol); err != nil {
			log.L.Warnf("reporting knapsack %d failed: %v", k.ID, err)
		}
		solutions[strategy] = sol
	}

	optimal, okOpt := solutions[solver.Bruteforce]
	approx, okApprox := solutions[solver.Heuristic]
	if okOpt && okApprox {
		_, err := fmt.Fprintln(out, report.Compare(optimal, approx))
		return errors.Wrap(err, "write comparison")
	}
	return nil
}
