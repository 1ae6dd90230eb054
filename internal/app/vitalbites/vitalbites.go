package vitalbites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/vitalbites-backend/internal/config"
	"github.com/magabrotheeeer/vitalbites-backend/internal/generator"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/vitalbites-backend/internal/migrations"
	"github.com/magabrotheeeer/vitalbites-backend/internal/services"
	firestorestorage "github.com/magabrotheeeer/vitalbites-backend/internal/storage/firestore"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage/postgres"
)

// Store объединяет репозитории всех сервисов: его реализуют оба
// драйвера хранилища, выбор делается в конфиге.
type Store interface {
	services.UserRepository
	services.PreferencesRepository
	services.MealPlanRepository
	services.RecipeRepository
	services.ShoppingRepository
	Close() error
}

type App struct {
	server *http.Server
	logger *slog.Logger
	store  Store
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	genClient := generator.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.GenerateTimeout)

	authService := services.NewAuthService(store, jwtMaker)
	preferencesService := services.NewPreferencesService(store, logger)
	mealPlanService := services.NewMealPlanService(store, genClient, logger)
	recipeService := services.NewRecipeService(store, logger)
	shoppingService := services.NewShoppingService(store, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, preferencesService, mealPlanService, recipeService, shoppingService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

// newStore создаёт хранилище по выбранному в конфиге драйверу.
// Миграции выполняются только для postgres: схему Firestore
// задают сами документы.
func newStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, "./migrations"); err != nil {
			return nil, err
		}
		if err = postgres.CheckDatabaseReady(db); err != nil {
			return nil, err
		}
		return db, nil
	case "firestore":
		return firestorestorage.New(ctx, cfg.ProjectID, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.store.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		return err
	}
}
