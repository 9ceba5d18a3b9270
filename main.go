package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"fabline/internal/audit"
	"fabline/internal/auth"
	coilapp "fabline/internal/coil/application"
	coilpg "fabline/internal/coil/infrastructure/postgres"
	coilhttp "fabline/internal/coil/interfaces/http"
	lineitemsapp "fabline/internal/lineitems/application"
	lineitemspg "fabline/internal/lineitems/infrastructure/postgres"
	lineitemshttp "fabline/internal/lineitems/interfaces/http"
	"fabline/internal/observability/metrics"
	"fabline/internal/options"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init()

	defaults, err := options.Load()
	if err != nil {
		logger.Fatalf("options error: %v", err)
	}

	itemsRepo := lineitemspg.NewRepository(db)
	itemsService, err := lineitemsapp.NewService(itemsRepo, itemsRepo, logger)
	if err != nil {
		logger.Fatalf("lineitems service error: %v", err)
	}
	auditRepo := audit.NewRepository(db)

	itemsHandler, err := lineitemshttp.NewHandler(itemsService, defaults, auditRepo)
	if err != nil {
		logger.Fatalf("lineitems handler error: %v", err)
	}

	coilRepo := coilpg.NewRepository(db)
	coilCatalog, err := coilapp.NewCatalog(coilRepo)
	if err != nil {
		logger.Fatalf("coil catalog error: %v", err)
	}
	coilHandler, err := coilhttp.NewHandler(coilCatalog)
	if err != nil {
		logger.Fatalf("coil handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/jobs", itemsHandler)
	mux.Handle("/api/v1/jobs/", itemsHandler)
	mux.Handle("/api/v1/coils", coilHandler)
	mux.Handle("/api/v1/coils/", coilHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		JWTSecret:   getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
