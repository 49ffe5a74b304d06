// Package main implements the todoapp CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/todoapp/internal/app"
	"github.com/idilsaglam/todoapp/internal/config"
	"github.com/idilsaglam/todoapp/internal/console"
	"github.com/idilsaglam/todoapp/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "todoapp",
	Short:         "A local todo list split into active and completed",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(addCmd, lsCmd, toggleCmd, uiCmd)
}

// newConsoleApp builds the application context around a console view.
// The returned cleanup flushes the logger.
func newConsoleApp() (*app.App, *console.View, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { logging.Sync(log) }

	v := console.New(cfg.Theme, os.Stdout, os.Stderr)
	a, err := app.New(cfg, log, v)
	if err != nil {
		// Typically a corrupt blob. Leave the stored data alone and let
		// the user decide what to do with it.
		log.Error("load state", zap.Error(err))
		cleanup()
		return nil, nil, nil, err
	}
	return a, v, cleanup, nil
}
