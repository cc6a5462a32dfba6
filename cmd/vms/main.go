package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vms/vms/internal/config"
	"github.com/vms/vms/internal/logic"
	"github.com/vms/vms/internal/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "vms",
		Short:         "Vaccination management system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(execCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderLines(newStyles().Error, err.Error()))
		os.Exit(1)
	}
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			return runShell(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command words...>",
		Short: "Run a single command and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			return runOnce(cmd.Context(), app, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every data file and report whether it is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return runValidate(storage.New(cfg.StoragePaths(), logger), cmd.OutOrStdout())
		},
	}
}

// app is a ready session: the logic manager plus what the front end needs to
// render results.
type app struct {
	manager  *logic.Manager
	pageSize int
	styles   styles
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	// Logger
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		return nil, logger, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, logger, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, logger.Level(cfg.Level()), nil
}

func bootstrap() (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store := storage.New(cfg.StoragePaths(), logger)
	m, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	logger.Info().Str("data_dir", cfg.DataDir).Msg("data loaded")

	return &app{
		manager:  logic.NewManager(m, store, cfg.PageSize, logger),
		pageSize: cfg.PageSize,
		styles:   newStyles(),
	}, nil
}

func runOnce(ctx context.Context, a *app, line string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := a.manager.Execute(ctx, line)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, a.render(res))
	return nil
}

func runValidate(store *storage.Storage, out io.Writer) error {
	m, err := store.Load()
	if err != nil {
		return fmt.Errorf("data files are invalid: %w", err)
	}
	fmt.Fprintf(out, "Data files are valid: %d patients, %d appointments, %d vaccinations, %d keywords\n",
		m.Patients().Len(), m.Appointments().Len(), m.Vaccinations().Len(), m.Keywords().Len())
	return nil
}
