package testutils

import (
	"database/sql"
	"path/filepath"
	"testing"

	"taskboard/db"
	"taskboard/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func SetupTestDatabase(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	testDB, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=10000")
	require.NoError(t, err)
	t.Cleanup(func() { testDB.Close() })

	err = db.InitializeSchema(testDB)
	require.NoError(t, err)

	return testDB
}

func SetupTestRepositoryFactory(t *testing.T) *db.RepositoryFactory {
	return db.NewRepositoryFactory(SetupTestDatabase(t), nil, "taskboard_test")
}

func GetTestConfig() *config.Config {
	return &config.Config{
		DatabaseType: config.SQLite,
		SQLitePath:   ":memory:",
		DatabaseName: "taskboard_test",
		Port:         "0",
		JwtKey:       []byte("test_jwt_secret_key_for_testing_only"),
		BcryptCost:   4, // bcrypt.MinCost keeps the suite fast
		CORSOrigin:   "*",
	}
}
