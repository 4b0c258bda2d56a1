package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/statroute"
	"github.com/kailas-cloud/statroute/internal/config"
	logpkg "github.com/kailas-cloud/statroute/internal/logger"
	"github.com/kailas-cloud/statroute/internal/metrics"
	"github.com/kailas-cloud/statroute/internal/version"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "statroute",
	Short: "Heuristic query router for the basketball stats answering service",
	Long: `statroute classifies free-text questions into a retrieval strategy
(statistical, contextual, or hybrid) and derives the retrieval tuning
parameters downstream steps consume.`,
}

var classifyCmd = &cobra.Command{
	Use:   "classify [query...]",
	Short: "Classify queries from arguments or stdin (one per line)",
	RunE: func(_ *cobra.Command, args []string) error {
		env := config.GetEnv()

		cfg, err := config.Load(env)
		if err != nil {
			// The CLI is usable without a config file; fall back to defaults.
			cfg = config.Default()
		}

		level := cfg.Logging.Level
		if debug {
			level = "debug"
		}
		logger, err := logpkg.NewLogger(env, level)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		metrics.RegisterClassifyMetrics()

		classifier, err := statroute.New(
			statroute.WithThresholds(statroute.Thresholds{
				RatioMinScore:   cfg.Router.RatioMinScore,
				Ratio:           cfg.Router.Ratio,
				AutoPromoteStat: cfg.Router.AutoPromoteStat,
				AutoPromoteCtx:  cfg.Router.AutoPromoteCtx,
			}),
			statroute.WithGlossaryTerms(cfg.Router.ExtraGlossary...),
			statroute.WithLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("create classifier: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)

		if len(args) > 0 {
			for _, q := range args {
				if err := enc.Encode(classifier.Classify(q)); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			}
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if err := enc.Encode(classifier.Classify(line)); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		logger.Debug("classification run finished")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("statroute %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
