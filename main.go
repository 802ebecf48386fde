package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/voterinfo/ward-candidates/cliparse"
	"github.com/voterinfo/ward-candidates/db"
	"github.com/voterinfo/ward-candidates/importer"
	"github.com/voterinfo/ward-candidates/locator"
	"github.com/voterinfo/ward-candidates/middleware"
	"github.com/voterinfo/ward-candidates/router"
	"github.com/voterinfo/ward-candidates/store"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// One-shot candidate ingest before serving
	if cfg.ImportFile != "" {
		n, err := importer.ImportCSV(dbConn, cfg.ImportFile)
		if err != nil {
			slog.Error("candidate import failed", "file", cfg.ImportFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Imported candidates", "file", cfg.ImportFile, "count", humanize.Comma(int64(n)))
	}

	// Load the column registry and wire the candidate store
	registry, err := locator.LoadRegistry(dbConn, cfg.DatabaseType)
	if err != nil {
		slog.Error("column registry load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Column registry loaded", "columns", len(registry.Columns()))
	st := store.New(dbConn, locator.NewResolver(dbConn, registry))

	// Create router
	mux := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
