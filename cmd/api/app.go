package main

import (
	"context"
	"fmt"
	"log"

	"meshguard_api/internal/adapter/persistence/repository"
	"meshguard_api/internal/config"
	"meshguard_api/internal/infrastructure/auth"
	"meshguard_api/internal/infrastructure/database"
	"meshguard_api/internal/usecase/interfaces"
)

// stores groups the repositories for the configured storage driver.
type stores struct {
	users    interfaces.IUserRepository
	quotes   interfaces.IQuoteRepository
	payments interfaces.IPaymentRepository
	contacts interfaces.IContactMessageRepository

	// migrate creates tables (dynamodb) or runs AutoMigrate (sql).
	migrate func(ctx context.Context) error
	close   func() error
}

func dynamoTables(cfg config.Config) repository.DynamoTables {
	return repository.DynamoTables{
		Users:           cfg.UsersTable,
		Quotes:          cfg.QuotesTable,
		Payments:        cfg.PaymentsTable,
		ContactMessages: cfg.ContactMessagesTable,
	}
}

func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, database.DynamoSettings{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			SessionToken:    cfg.AWSSessionToken,
		})
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		tables := dynamoTables(cfg)
		log.Printf("[boot] storage=dynamodb region=%s endpoint=%q", cfg.AWSRegion, cfg.DynamoDBEndpoint)
		return &stores{
			users:    repository.NewUserDynamoRepository(client, tables.Users),
			quotes:   repository.NewQuoteDynamoRepository(client, tables.Quotes),
			payments: repository.NewPaymentDynamoRepository(client, tables.Payments, tables.Quotes),
			contacts: repository.NewContactMessageDynamoRepository(client, tables.ContactMessages),
			migrate: func(ctx context.Context) error {
				return database.EnsureTables(ctx, client, tables.Specs())
			},
			close: func() error { return nil },
		}, nil

	case config.StorageSQLite, config.StoragePostgres:
		db, err := database.OpenSQL(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.StorageDriver, err)
		}
		log.Printf("[boot] storage=%s", cfg.StorageDriver)
		return &stores{
			users:    repository.NewUserGormRepository(db),
			quotes:   repository.NewQuoteGormRepository(db),
			payments: repository.NewPaymentGormRepository(db),
			contacts: repository.NewContactMessageGormRepository(db),
			migrate: func(context.Context) error {
				return repository.AutoMigrate(db)
			},
			close: func() error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.StorageDriver)
}

func newTokenIssuer(cfg config.Config) (*auth.TokenIssuer, error) {
	return auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}

func newPasswordHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(auth.DefaultBcryptCost)
}
