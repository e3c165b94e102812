package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

var (
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:     "token <user-id>",
	Short:   "Mint an API token signed with the configured JWT secret",
	GroupID: "system",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := domain.AuthorityLevel(tokenRole)
		if !role.Valid() {
			return fmt.Errorf("unknown role %q", tokenRole)
		}
		signed, err := middleware.GenerateJWT(args[0], role, cfg.JWTSecret, tokenTTL, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		if jsonOutput {
			return printJSON(map[string]any{"token": signed, "expiresAt": time.Now().Add(tokenTTL).UTC()})
		}
		fmt.Println(signed)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(domain.AuthorityEmployee), "authority level carried by the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
