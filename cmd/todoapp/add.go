package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new todo (text can be multiple words)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var (
	addPriority string
	addDueDate  string
)

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "priority label")
	addCmd.Flags().StringVarP(&addDueDate, "due", "d", "", "due date, e.g. 2024-01-01")
	_ = addCmd.MarkFlagRequired("due")
}

func runAdd(cmd *cobra.Command, args []string) error {
	_, v, cleanup, err := newConsoleApp()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := v.SubmitAdd(strings.Join(args, " "), addPriority, addDueDate); err != nil {
		return err
	}
	v.OK("added")
	return nil
}
