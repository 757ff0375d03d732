package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/workflow"
)

func workflowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workflow <status>",
		Short: "Show the transitions available from a load status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.LoadStatus(strings.ToLower(strings.TrimSpace(args[0])))
			if !status.Valid() {
				return fmt.Errorf("unknown status %q", args[0])
			}

			out := cmd.OutOrStdout()
			next := make([]string, 0)
			for _, s := range workflow.AvailableTransitions(status) {
				next = append(next, string(s))
			}
			fmt.Fprintf(out, "status:      %s\n", status)
			fmt.Fprintf(out, "terminal:    %t\n", workflow.IsTerminal(status))
			fmt.Fprintf(out, "transitions: %s\n", orNone(strings.Join(next, ", ")))

			prev := "none"
			if p, ok := workflow.PreviousStatus(status); ok {
				prev = string(p)
			}
			fmt.Fprintf(out, "previous:    %s\n", prev)

			if pct, ok := workflow.Progress(status); ok {
				fmt.Fprintf(out, "progress:    %d%%\n", pct)
			} else {
				fmt.Fprintln(out, "progress:    n/a")
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
