package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

var testDB *database.DB

// requireTestDB connects to the integration database, or skips the test when
// TEST_DATABASE_URL is not set.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}

	if testDB == nil {
		db, err := database.NewPostgreSQLDB(context.Background(), dsn)
		require.NoError(t, err, "failed to connect to test database")
		testDB = db
	}
	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"attendance_records",
		"leave_requests",
		"notices",
		"users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}
