package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"letter-drafting-be/internal/repository/unitofwork"
	"letter-drafting-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.LetterDraftRepository())
	assert.NotNil(t, uow.LetterSectionRepository())
	assert.NotNil(t, uow.ContactRepository())
	assert.NotNil(t, uow.OrganizationRepository())
	assert.NotNil(t, uow.LetterTypeRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Letter Draft Repository", func(t *testing.T) {
		count, err := uow.LetterDraftRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Letter draft count: %d", count)
	})

	t.Run("Check Letter Type Repository", func(t *testing.T) {
		types, err := uow.LetterTypeRepository().FindAll(context.Background())
		assert.NoError(t, err)
		t.Logf("Letter type count: %d", len(types))
	})

	t.Run("Check Organization Repository", func(t *testing.T) {
		orgs, err := uow.OrganizationRepository().FindAll(context.Background())
		assert.NoError(t, err)
		t.Logf("Organization count: %d", len(orgs))
	})
}

func TestTransactionRollback(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()

	uow := uowFactory.NewUnitOfWork(ctx)
	before, err := uow.LetterDraftRepository().Count(ctx)
	assert.NoError(t, err)

	// Begin and immediately roll back; nothing may stick.
	assert.NoError(t, uow.Begin(ctx))
	assert.NoError(t, uow.Rollback())

	after, err := uowFactory.NewUnitOfWork(ctx).LetterDraftRepository().Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}
