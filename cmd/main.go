// Package main provides the CLI entrypoint for the vendors fleet tool.
// It wires subcommands (report, cover), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"vendors/internal/config"
	"vendors/internal/scenario"
	"vendors/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadScenario decodes and builds the scenario configured in cfg. A scenario
// that cannot be built leaves nothing to report on, so it is fatal.
func loadScenario(ctx context.Context, cfg *config.Config) *scenario.Scenario {
	doc, err := scenario.Load(cfg.Scenario.Path)
	if err != nil {
		logger.Fatal(ctx, "could not load scenario", zap.Error(err))
	}

	s, err := scenario.Build(doc)
	if err != nil {
		logger.Fatal(ctx, "could not build scenario", zap.String("path", cfg.Scenario.Path), zap.Error(err))
	}
	logger.Debug(ctx, "scenario loaded",
		zap.String("path", cfg.Scenario.Path),
		zap.Int("centers", len(s.Centers())))

	return s
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "vendors",
		Short: "Answers questions about vendors and their distribution centers",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := logger.Named(context.Background(), "vendors")

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		reportCommand(ctx, cfg),
		coverCommand(ctx, cfg),
	)

	err = rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the config flag from args so it can be read before
// cobra parses the rest of the command line.
func configArgs(args []string) []string {
	for i, arg := range args {
		if arg == "-c" || arg == "--config" {
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}

			return nil
		}
		for _, prefix := range []string{"-c=", "--config="} {
			if path, ok := strings.CutPrefix(arg, prefix); ok {
				return []string{"-c", path}
			}
		}
	}

	return nil
}
