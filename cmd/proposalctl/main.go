// Package main provides proposalctl, a command line front end for building
// and submitting service proposals.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"proposal_relay/internal/domain/entities"
	"proposal_relay/internal/infrastructure/config"
	"proposal_relay/internal/infrastructure/logger"
	"proposal_relay/internal/infrastructure/webhook"
	"proposal_relay/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

const appName = "proposalctl"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Build and submit service proposals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(catalogCmd())
	cmd.AddCommand(submitCmd(&logLevel))
	return cmd
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the line item catalog with unit costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DESCRIPTION\tUNIT COST")
			for _, e := range entities.Catalog() {
				fmt.Fprintf(w, "%s\t%.2f\n", e.Description, e.UnitCost)
			}
			return w.Flush()
		},
	}
}

func submitCmd(logLevel *string) *cobra.Command {
	var (
		formPath string
		url      string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Assemble a proposal from a YAML form and post it to the webhook",
		Long: `Reads a YAML form, prices its line items from the catalog, assigns a
proposal id and posts the proposal once. The assembled document is printed
whether or not the webhook accepted it.

--url defaults to WEBHOOK_URL; the relay's /api/proposals endpoint works too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if url == "" {
				url = cfg.WebhookURL
			}
			if timeout <= 0 {
				timeout = cfg.WebhookTimeout
			}

			form, err := loadFormFile(formPath)
			if err != nil {
				return err
			}

			log := logger.New(*logLevel, "console")
			defer func() { _ = log.Sync() }()

			gateway, err := webhook.NewWebhookGateway(url, timeout, cfg.WebhookMock, log)
			if err != nil {
				return err
			}

			res, err := usecase.NewProposalSubmitUseCase(gateway, log).Submit(cmd.Context(), form)
			if res.Document != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Document)
			}
			if res.Notice != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), res.Notice)
			}
			if errors.Is(err, usecase.ErrWebhookRejected) {
				return fmt.Errorf("%w (status %d): %s", err, res.StatusCode, res.ResponseText)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&formPath, "file", "f", "", "Form file (YAML)")
	cmd.Flags().StringVar(&url, "url", "", "Webhook URL (default $WEBHOOK_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (default $WEBHOOK_TIMEOUT)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
