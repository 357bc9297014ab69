package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/platform/config"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for scripts and operators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			signed, expiresAt, err := utils.IssueServiceToken(subject, cfg.JWTSecret, cfg.JWTIssuer, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().String("subject", "", "user ID recorded on overrides made with this token (required)")
	cmd.Flags().Duration("ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
