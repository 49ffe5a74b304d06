package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/todoapp/internal/app"
	"github.com/idilsaglam/todoapp/internal/config"
	"github.com/idilsaglam/todoapp/internal/logging"
	"github.com/idilsaglam/todoapp/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive list",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer logging.Sync(log)

	t := tui.New()
	if _, err := app.New(cfg, log, t); err != nil {
		log.Error("load state", zap.Error(err))
		return err
	}
	return t.Run()
}
