// Package server initializes and runs the crudboard server application.
// It opens the storage backends, runs schema migrations, wires the
// services and HTTP endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/vkarpovs/crudboard/internal/logging"
	"github.com/vkarpovs/crudboard/internal/server/auth"
	"github.com/vkarpovs/crudboard/internal/server/config"
	serverhttp "github.com/vkarpovs/crudboard/internal/server/http"
	"github.com/vkarpovs/crudboard/internal/server/repositories/refreshtokens"
	"github.com/vkarpovs/crudboard/internal/server/repositories/repomanager"
	"github.com/vkarpovs/crudboard/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager(c.RefreshTokenValidityDuration)
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	tokenRepo, err := newRefreshTokenRepository(c, rm, db)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "refresh-token store selected", "backend", c.RefreshTokenStore)

	codec := auth.NewCodec(c.SecretKey, c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)

	as := services.NewAuthService(rm.Users(db), tokenRepo, codec)
	us := services.NewUserService(rm.Users(db))

	return &App{config: c, logger: logger, db: db, authService: as, userService: us}, nil
}

// newRefreshTokenRepository selects the refresh-token store backend from
// configuration. Users always live in PostgreSQL; only the refresh-token
// records may be kept elsewhere.
func newRefreshTokenRepository(c *config.Config, rm *repomanager.PostgresRepositoryManager, db *sql.DB) (refreshtokens.Repository, error) {
	switch c.RefreshTokenStore {
	case config.StorePostgres:
		return rm.RefreshTokens(db), nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		return refreshtokens.NewRedisRepository(client, c.RefreshTokenValidityDuration), nil
	case config.StoreMemory:
		return refreshtokens.NewMemoryRepository(c.RefreshTokenValidityDuration), nil
	default:
		return nil, fmt.Errorf("unknown refresh token store: %s", c.RefreshTokenStore)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	h := serverhttp.NewHandler(app.authService, app.userService, app.logger)
	mw := serverhttp.NewAuthMiddleware(app.authService)

	s := serverhttp.NewServer(app.config.EndpointAddrHTTP, serverhttp.NewRouter(h, mw), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
