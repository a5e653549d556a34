package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type DatabaseType string

const (
	MongoDB DatabaseType = "mongodb"
	SQLite  DatabaseType = "sqlite"
)

const (
	defaultPort         = "5000"
	defaultDatabaseName = "taskboard"
	defaultBcryptCost   = 10
	defaultCORSOrigin   = "*"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	JwtKey       []byte
	Port         string
	DatabaseType DatabaseType
	// MongoDB config
	MongoURI string
	// SQLite config
	SQLitePath string
	// Common configs
	DatabaseName string
	BcryptCost   int
	CORSOrigin   string
}

// LoadConfig reads an optional .env file and then builds the config from
// the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return Load(os.Getenv)
}

// Load builds the config from getenv.
func Load(getenv func(string) string) (*Config, error) {
	jwtSecret := getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	databaseName := getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = defaultDatabaseName
	}

	port := getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	bcryptCost := defaultBcryptCost
	if raw := getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST is not a number: %w", err)
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
		}
		bcryptCost = cost
	}

	corsOrigin := getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = defaultCORSOrigin
	}

	// Determine database type
	dbType := getenv("DATABASE_TYPE")
	if dbType == "" {
		dbType = string(SQLite) // Default to SQLite
	}

	config := &Config{
		JwtKey:       []byte(jwtSecret),
		Port:         port,
		DatabaseType: DatabaseType(dbType),
		DatabaseName: databaseName,
		BcryptCost:   bcryptCost,
		CORSOrigin:   corsOrigin,
	}

	// Configure based on database type
	switch config.DatabaseType {
	case MongoDB:
		mongoURI := getenv("MONGODB_URI")
		if mongoURI == "" {
			mongoURI = getenv("MONGO_URI")
		}
		if mongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is not set")
		}
		config.MongoURI = mongoURI
	case SQLite:
		sqlitePath := getenv("SQLITE_PATH")
		if sqlitePath == "" {
			// Default to a data directory in the current directory
			sqlitePath = filepath.Join("data", fmt.Sprintf("%s.db", databaseName))
		}
		config.SQLitePath = sqlitePath
	default:
		return nil, fmt.Errorf("unsupported DATABASE_TYPE: %s", dbType)
	}

	return config, nil
}
