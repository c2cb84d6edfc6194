package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/amiskov/folio/pkg/api"
	"github.com/amiskov/folio/pkg/config"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/middleware"
	"github.com/amiskov/folio/pkg/session"
	"github.com/amiskov/folio/pkg/tokenstore"
	"github.com/amiskov/folio/pkg/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Parse()
	zlog := logger.Run(cfg.LogLevel)
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, closeTokens, err := openTokenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("can't open token storage `%s`: %v", cfg.TokenStore, err)
	}
	defer closeTokens()

	client, err := api.New(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("can't create API client: %v", err)
	}

	store := session.New(client, tokens, session.WithTimeout(cfg.RequestTimeout))
	store.Initialize(ctx)
	zlog.Infof("session restored as %s", store.State())

	guard := middleware.NewGuard(store, web.LoginPath)

	r := mux.NewRouter()
	web.NewHandler(store, client).Routes(r, guard)

	logMiddleware := middleware.NewLoggingMiddleware(zlog)
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlog.Errorf("shutdown: %v", err)
		}
	}()

	zlog.Infof("serving at http://%s/, API at %s", cfg.RunAddress, cfg.APIURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}

func openTokenStore(ctx context.Context, cfg *config.Config) (tokenstore.Store, func(), error) {
	noop := func() {}

	switch cfg.TokenStore {
	case config.TokenStoreFile:
		return tokenstore.NewFile(cfg.TokenPath, cfg.SecretKey), noop, nil
	case config.TokenStoreMemory:
		return tokenstore.NewMemory(""), noop, nil
	case config.TokenStoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, err
		}
		return tokenstore.NewRedis(rdb, "folio"), func() { rdb.Close() }, nil
	case config.TokenStorePostgres:
		db, err := sql.Open("pgx", cfg.DatabaseURI)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		s, err := tokenstore.NewPostgres(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, func() { db.Close() }, nil
	default:
		return nil, nil, errors.New("unknown token storage")
	}
}
