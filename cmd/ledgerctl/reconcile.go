package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reconcileProfile string
	reconcileLimit   int
)

var reconcileCmd = &cobra.Command{
	Use:     "reconcile",
	Short:   "Auto-attach orphaned events of a business profile to chains",
	GroupID: "ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer ledger.Close()

		// Ctrl-C stops between events; the partial result is still printed.
		res, err := ledger.Services.Reconciler.BulkAutoAttachOrphanedEvents(cmd.Context(), reconcileProfile, reconcileLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(res)
		}
		fmt.Printf("Processed: %d\n", res.Processed)
		fmt.Printf("Attached:  %d\n", res.Attached)
		fmt.Printf("Failed:    %d\n", res.Failed)
		if res.Cancelled {
			fmt.Println("Run was cancelled before the batch finished.")
		}
		for _, r := range res.Results {
			if !r.Success {
				fmt.Printf("  %s: %s\n", r.EventID, r.Error)
			} else if r.NeedsReview() {
				fmt.Printf("  %s: attached by %s, needs review\n", r.EventID, r.Method)
			}
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileProfile, "profile", "", "business profile id (required)")
	reconcileCmd.Flags().IntVar(&reconcileLimit, "limit", 0, "maximum events to process (default: RECONCILE_BATCH_LIMIT)")
	_ = reconcileCmd.MarkFlagRequired("profile")
}
