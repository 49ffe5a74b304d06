package main

import "github.com/spf13/cobra"

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List todos grouped into active and completed",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	_, v, cleanup, err := newConsoleApp()
	if err != nil {
		return err
	}
	defer cleanup()

	v.Render()
	return nil
}
