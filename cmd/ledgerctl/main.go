// Command ledgerctl runs maintenance jobs against the ledger database directly.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/app"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/config"
)

var (
	jsonOutput bool
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "ledgerctl <command>",
	Short:         "Maintenance CLI for the event ledger",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddGroup(
		&cobra.Group{ID: "ledger", Title: "Ledger Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.AddCommand(reconcileCmd, checkCmd, migrateCmd, tokenCmd)
}

// openApp connects to the configured storage without running migrations.
func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, cfg, logger)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
