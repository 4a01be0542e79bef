package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"audiomatch/internal/discovery"
	apphttp "audiomatch/internal/http"
	"audiomatch/internal/httpx"
	"audiomatch/internal/platform/audible"
	"audiomatch/internal/platform/audnexus"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	userAgent := getEnv("UPSTREAM_USER_AGENT", "audiomatch/1.0")
	region := getEnv("AUDNEXUS_REGION", "us")
	upstreamRPS := getEnvInt("UPSTREAM_RPS", 5)
	upstreamRetries := getEnvInt("UPSTREAM_MAX_RETRIES", 3)
	inboundRPS := getEnvInt("RATE_LIMIT_RPS", 10)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(getEnv("LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	audibleClient := audible.NewClient(userAgent, upstreamRPS, upstreamRetries)
	audnexusClient := audnexus.NewClient(userAgent, region, upstreamRPS, upstreamRetries)

	engine := discovery.New(
		discovery.NewAudibleCatalog(audibleClient),
		discovery.NewAudnexusCatalog(audnexusClient, logger),
		discovery.WithLogger(logger),
	)

	audiobookHandler := apphttp.NewAudiobookHandler(engine, apphttp.NewCache(), logger)

	router := newRouter(audiobookHandler)

	rateLimiter := httpx.NewRateLimitMiddleware(float64(inboundRPS), inboundRPS*2)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = rateLimiter.Middleware(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server", "addr", serverAddress, "region", region)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func newRouter(audiobookHandler *apphttp.AudiobookHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("POST /v1/audiobooks/match", audiobookHandler.Match)
	router.HandleFunc("POST /v1/audiobooks/candidates", audiobookHandler.Candidates)
	router.HandleFunc("POST /v1/books/enrich", audiobookHandler.Enrich)

	return router
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Fatalf("invalid integer for %s: %q", key, v)
	}
	return def
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
