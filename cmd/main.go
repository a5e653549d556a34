package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"taskboard/db"
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/task"
	"taskboard/internal/web"
	"taskboard/middleware"

	"go.mongodb.org/mongo-driver/mongo"
)

// Global loggers for different output streams
var (
	infoLogger  = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
)

func main() {
	infoLogger.Printf("Starting taskboard - Process ID: %d", os.Getpid())
	infoLogger.Printf("Runtime: %s/%s, Go version: %s", runtime.GOOS, runtime.GOARCH, runtime.Version())

	// Missing configuration is fatal, never run misconfigured
	cfg, err := config.LoadConfig()
	if err != nil {
		errorLogger.Fatalf("FATAL ERROR: failed to load configuration: %v", err)
	}

	repoFactory, err := openStorage(cfg)
	if err != nil {
		errorLogger.Fatalf("FATAL ERROR: failed to open %s storage: %v", cfg.DatabaseType, err)
	}

	userRepo := repoFactory.NewUserRepository()
	taskRepo := repoFactory.NewTaskRepository()

	authService := auth.NewAuthService(userRepo, cfg)
	taskService := task.NewTaskService(taskRepo)

	router := web.NewRouter(
		auth.NewAuthHandlers(authService),
		task.NewTaskHandlers(taskService),
		middleware.NewMiddleware(cfg),
	).SetupRoutes()
	// CORS wraps the router so preflight requests never reach the gate
	handler := middleware.LoggingMiddleware(infoLogger)(middleware.SetupCORS(cfg.CORSOrigin)(router))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		infoLogger.Printf("Server running on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	waitForShutdown(server, serverErr)

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repoFactory.Close(closeCtx); err != nil {
		errorLogger.Printf("Failed to close storage: %v", err)
	}
	infoLogger.Println("[SUCCESS] Services stopped")
}

// openStorage connects the configured backend and prepares its schema
func openStorage(cfg *config.Config) (*db.RepositoryFactory, error) {
	var sqliteDB *sql.DB
	var mongoClient *mongo.Client

	switch cfg.DatabaseType {
	case config.MongoDB:
		infoLogger.Println("Using MongoDB database")
		client, err := db.ConnectToMongo(context.Background(), cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureIndexes(context.Background(), client, cfg.DatabaseName); err != nil {
			client.Disconnect(context.Background())
			return nil, err
		}
		mongoClient = client
	default:
		infoLogger.Println("Using SQLite database")
		conn, err := db.ConnectToSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.InitializeSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		sqliteDB = conn
	}

	return db.NewRepositoryFactory(sqliteDB, mongoClient, cfg.DatabaseName), nil
}

func waitForShutdown(server *http.Server, serverErr <-chan error) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		infoLogger.Printf("Received shutdown signal: %v", sig)
	case err, ok := <-serverErr:
		if ok {
			errorLogger.Printf("Server ListenAndServe error: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	infoLogger.Println("Shutting down the server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		errorLogger.Printf("Server Shutdown error: %v", err)
	}
}
