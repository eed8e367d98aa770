// Package main is the exercise command-line tool. It runs the calculator,
// the registration form and the course generator in the terminal, sharing
// the domain and application layers with the HTTP service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(surveyPrompter{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// cli holds what every subcommand needs once the root command has loaded
// configuration.
type cli struct {
	prompter prompter
	cfg      *config.Config
	logger   *slog.Logger

	profile   string
	configDir string
	logLevel  string
}

func newRootCmd(p prompter) *cobra.Command {
	c := &cli{prompter: p}

	root := &cobra.Command{
		Use:           "exercise",
		Short:         "Calculator, registration form and course generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.profile, "profile", os.Getenv("APP_PROFILE"),
		"configuration profile to load from --config-dir; built-in defaults when empty")
	root.PersistentFlags().StringVar(&c.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		newCalcCmd(c),
		newRegisterCmd(c),
		newCourseCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if c.profile == "" {
		cfg, err = config.Defaults()
	} else {
		cfg, err = config.Load(c.profile, config.WithConfigDir(c.configDir))
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if c.logLevel != "" {
		level = c.logLevel
	}

	c.cfg = cfg
	c.logger = logging.New(level, "text", cmd.ErrOrStderr())
	return nil
}
