package server

import (
	"net/http"
	"strings"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

// HealthServiceName is reported by the gRPC health checker.
const HealthServiceName = "foodgram.v1.FoodgramService"

type RequestRecorder interface {
	RecordRequest(route string, method string, statusCode int, duration time.Duration)
}

type RouterDeps struct {
	Recipes       *RecipeHandler
	Memberships   *MembershipHandler
	Subscriptions *SubscriptionHandler
	Catalog       *CatalogHandler

	// Authenticate resolves the caller; requests it lets through anonymously
	// reach handlers without a user in context.
	Authenticate func(http.Handler) http.Handler

	Recorder RequestRecorder
	Metrics  http.Handler
	Health   grpchealth.Checker

	MediaDir    string
	MediaPrefix string

	Logger *zap.Logger
}

func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(deps.Logger, deps.Recorder))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	if deps.Health != nil {
		path, handler := grpchealth.NewHandler(deps.Health)
		r.Handle(path+"*", handler)
	}

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	if deps.MediaDir != "" && deps.MediaPrefix != "" {
		prefix := "/" + strings.Trim(deps.MediaPrefix, "/") + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(deps.MediaDir))))
	}

	r.Group(func(r chi.Router) {
		if deps.Authenticate != nil {
			r.Use(deps.Authenticate)
		}

		r.Get("/s/{code}", deps.Recipes.FollowShortLink)

		r.Route("/api/recipes", func(r chi.Router) {
			r.Get("/", deps.Recipes.ListRecipes)
			r.Post("/", deps.Recipes.CreateRecipe)
			r.Get("/download_shopping_cart", deps.Memberships.DownloadShoppingList)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deps.Recipes.GetRecipe)
				r.Patch("/", deps.Recipes.UpdateRecipe)
				r.Put("/", deps.Recipes.ReplaceRecipe)
				r.Delete("/", deps.Recipes.DeleteRecipe)
				r.Get("/get-link", deps.Recipes.GetLink)
				r.Get("/short-link", deps.Recipes.ShortLink)

				r.Post("/favorite", deps.Memberships.Add(model.KindFavorite))
				r.Delete("/favorite", deps.Memberships.Remove(model.KindFavorite))
				r.Post("/shopping_cart", deps.Memberships.Add(model.KindCart))
				r.Delete("/shopping_cart", deps.Memberships.Remove(model.KindCart))
			})
		})

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/subscriptions", deps.Subscriptions.ListSubscriptions)
			r.Post("/{id}/subscribe", deps.Subscriptions.Subscribe)
			r.Delete("/{id}/subscribe", deps.Subscriptions.Unsubscribe)
		})

		r.Get("/api/ingredients", deps.Catalog.ListIngredients)
		r.Get("/api/tags", deps.Catalog.ListTags)
	})

	return r
}

// requestLogger logs every request once and feeds the request metrics.
func requestLogger(logger *zap.Logger, recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			duration := time.Since(start)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("duration", duration),
			)

			if recorder != nil {
				recorder.RecordRequest(route, r.Method, status, duration)
			}
		})
	}
}
