package main

import (
	"context"
	"fmt"

	"doctorsportal/config"
	"doctorsportal/database"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default treatment catalogue into MongoDB",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client, err := database.Connect(ctx, cfg.MongoURI())
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background()) //nolint:errcheck

			svc := &booking.DefaultBookingService{
				Services: serviceRepo.NewMongoServiceRepo(client.Database(cfg.DBName)),
			}
			created, err := svc.SeedServices(ctx, booking.DefaultCatalog())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d services (%d new)\n", len(booking.DefaultCatalog()), created)
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print an access token for an email (local testing)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			token, err := utils.NewTokenManager(cfg.AccessTokenSecret, cfg.TokenTTL).GenerateToken(email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim of the token")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
