package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Move a todo between the active and completed lists",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("toggle: not a number: %s", args[0])
	}

	_, v, cleanup, err := newConsoleApp()
	if err != nil {
		return err
	}
	defer cleanup()

	// Only count displays caused by this gesture, not by the initial load.
	v.ResetDirty()
	if err := v.SubmitToggle(id); err != nil {
		return err
	}
	// An unknown id is a no-op, not an error; stay quiet in that case.
	if v.Rendered() {
		v.OK("toggled")
	}
	return nil
}
