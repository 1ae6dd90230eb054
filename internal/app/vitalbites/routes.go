// Package vitalbites предоставляет сборку и маршруты основного приложения.
package vitalbites

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/auth/token"
	mealplangenerate "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/mealplan/generate"
	mealplanget "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/mealplan/get"
	preferencesget "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/preferences/get"
	preferencesupdate "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/preferences/update"
	recipecreate "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/recipe/create"
	recipelist "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/recipe/list"
	shoppingadd "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/shopping/add"
	shoppingclear "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/shopping/clear"
	shoppinglist "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/shopping/list"
	shoppingremove "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/shopping/remove"
	shoppingupdate "github.com/magabrotheeeer/vitalbites-backend/internal/http/handlers/shopping/update"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *services.AuthService,
	preferencesService *services.PreferencesService,
	mealPlanService *services.MealPlanService,
	recipeService *services.RecipeService,
	shoppingService *services.ShoppingService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/token", token.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/me", me.New(logger, authService).ServeHTTP)
			r.Get("/preferences", preferencesget.New(logger, preferencesService).ServeHTTP)
			r.Put("/preferences", preferencesupdate.New(logger, preferencesService).ServeHTTP)
			r.Post("/meal-plan/generate", mealplangenerate.New(logger, mealPlanService).ServeHTTP)
			r.Get("/meal-plan", mealplanget.New(logger, mealPlanService).ServeHTTP)
			r.Post("/recipes", recipecreate.New(logger, recipeService).ServeHTTP)
			r.Get("/recipes", recipelist.New(logger, recipeService).ServeHTTP)
			r.Get("/shopping-list", shoppinglist.New(logger, shoppingService).ServeHTTP)
			r.Post("/shopping-list", shoppingadd.New(logger, shoppingService).ServeHTTP)
			r.Put("/shopping-list/{id}", shoppingupdate.New(logger, shoppingService).ServeHTTP)
			r.Delete("/shopping-list/{id}", shoppingremove.New(logger, shoppingService).ServeHTTP)
			r.Delete("/shopping-list", shoppingclear.New(logger, shoppingService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
