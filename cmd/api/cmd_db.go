package main

import (
	"context"
	"fmt"
	"log"

	"meshguard_api/internal/config"
	"meshguard_api/internal/usecase"

	"github.com/spf13/cobra"
)

// bootStores loads config and opens the configured storage.
func bootStores(ctx context.Context) (config.Config, *stores, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	st, err := openStores(ctx, cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, st, nil
}

// meshguard migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the DynamoDB tables or migrate the SQL schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, err := bootStores(ctx)
		if err != nil {
			return err
		}
		defer st.close()

		if err := st.migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Printf("[migrate] done")
		return nil
	},
}

var adminName, adminEmail, adminPassword string

// meshguard create-admin
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account, or promote an existing user by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, st, err := bootStores(ctx)
		if err != nil {
			return err
		}
		defer st.close()

		tokens, err := newTokenIssuer(cfg)
		if err != nil {
			return err
		}
		authUC := usecase.NewAuthUseCase(st.users, newPasswordHasher(), tokens)
		admin, err := authUC.EnsureAdmin(ctx, adminName, adminEmail, adminPassword)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin ready id=%s email=%s\n", admin.ID, admin.Email)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "display name for a new admin")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "password for a new admin")
	_ = createAdminCmd.MarkFlagRequired("email")
}
