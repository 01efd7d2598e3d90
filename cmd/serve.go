package cmd

import (
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/media"
	"droscher.com/Foodgram/pkg/metrics"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/server"
	"droscher.com/Foodgram/pkg/service"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	images, err := media.NewStore(conf.Media, logger)
	if err != nil {
		logger.Error("error preparing media store", zap.Error(err))

		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	recipes := service.NewRecipeService(repo, repo, repo, images, logger,
		service.WithShortCodes(service.NanoIDShortCodes(conf.Recipes.ShortCodeLength), conf.Recipes.ShortCodeAttempts),
		service.WithRecorder(collector))
	memberships := service.NewMembershipService(repo, repo, logger)
	shopping := service.NewShoppingListService(repo, logger)
	subscriptions := service.NewSubscriptionService(repo, logger)
	catalog := service.NewCatalogService(repo)

	authManager := auth.NewAuthManager(conf.Auth, repo, logger)

	router := server.NewRouter(&server.RouterDeps{
		Recipes:       server.NewRecipeHandler(recipes, conf.Server.BaseURL, logger),
		Memberships:   server.NewMembershipHandler(memberships, shopping, logger),
		Subscriptions: server.NewSubscriptionHandler(subscriptions, logger),
		Catalog:       server.NewCatalogHandler(catalog, logger),
		Authenticate:  authManager.Middleware,
		Recorder:      collector,
		Metrics:       metrics.Handler(registry),
		Health:        grpchealth.NewStaticChecker(server.HealthServiceName),
		MediaDir:      images.Dir(),
		MediaPrefix:   images.URLPrefix(),
		Logger:        logger,
	})

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(router, conf.Server.CORSOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler, origins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
		},
		ExposedHeaders:     []string{"content-disposition"},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
