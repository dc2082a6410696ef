package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todo-tracker/config"
	"todo-tracker/internal/task"
	"todo-tracker/internal/task/delivery/cli"
	"todo-tracker/internal/task/repository"
	fileRepo "todo-tracker/internal/task/repository/file"
	"todo-tracker/internal/task/usecase"
	"todo-tracker/pkg/datemath"
	"todo-tracker/pkg/log"
)

var Version = "dev"

type rootFlags struct {
	configPath string
	taskFile   string
}

func main() {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Interactive personal to-do list",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config.yaml")
	rootCmd.PersistentFlags().StringVarP(&flags.taskFile, "file", "f", "", "Task file (overrides storage.path)")

	rootCmd.AddCommand(exportCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads config and builds the logger and task use case.
// Logs always go to stderr so they never interleave with the menu on stdout.
func bootstrap(flags *rootFlags) (*config.Config, log.Logger, task.UseCase, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if flags.taskFile != "" {
		cfg.Storage.Path = flags.taskFile
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPaths:  []string{"stderr"},
	})

	repo := fileRepo.New(repository.FileOptions{Path: cfg.Storage.Path}, logger)
	uc := usecase.New(logger, repo, datemath.NewParser(nil), usecase.Options{
		Autosave: cfg.Storage.Autosave,
	})

	return cfg, logger, uc, nil
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	cfg, logger, uc, err := bootstrap(flags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	logger.Debugf(ctx, "Task file: %s", cfg.Storage.Path)

	// An unreadable task file is reported and the menu starts with an empty list.
	if err := uc.Load(ctx); err != nil {
		if !errors.Is(err, task.ErrLoad) {
			return err
		}
		logger.Warnf(ctx, "Starting with an empty task list: %v", err)
		fmt.Fprintln(cmd.OutOrStdout(), cli.ErrorMessage(err))
	}

	h := cli.New(logger, uc, cmd.InOrStdin(), cmd.OutOrStdout())
	return h.Run(ctx)
}
