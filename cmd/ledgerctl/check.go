package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

var checkTarget string

var checkCmd = &cobra.Command{
	Use:     "check <event-id>",
	Short:   "Explain whether an event may move to a status (default: posted)",
	GroupID: "ledger",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer ledger.Close()

		var check *domain.Check
		target := domain.EventStatus(checkTarget)
		if target == domain.StatusPosted {
			check, err = ledger.Services.Enforcement.CanPostEvent(cmd.Context(), args[0])
		} else {
			check, err = ledger.Services.Enforcement.CanProgressStatus(cmd.Context(), args[0], target)
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(check)
		}
		if check.IsAllowed {
			fmt.Printf("%s -> %s: allowed\n", args[0], target)
			if check.DecisionID != "" {
				fmt.Printf("  under decision %s\n", check.DecisionID)
			}
			return nil
		}
		fmt.Printf("%s -> %s: denied (%s)\n", args[0], target, check.Code)
		fmt.Printf("  %s\n", check.ErrorMessage)
		if check.BlockedBy != "" {
			fmt.Printf("  blocked by %s\n", check.BlockedBy)
		}
		if check.RequiredDecision != "" {
			fmt.Printf("  requires a %s decision\n", check.RequiredDecision)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkTarget, "target", string(domain.StatusPosted), "target status")
}
