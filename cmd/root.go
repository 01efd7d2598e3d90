package cmd

import (
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/repository"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve           ServeCmd           `cmd:"" default:"1"                              help:"Run the server"`
	Migrate         MigrateCmd         `cmd:"" help:"Run database migrations"`
	LoadIngredients LoadIngredientsCmd `cmd:"" help:"Load ingredients from a JSON file"`
	LoadTags        LoadTagsCmd        `cmd:"" help:"Load tags from a JSON file"`
	AddUser         AddUserCmd         `cmd:"" help:"Register a user"`
}

func toolLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

// openRepository loads the config and connects for the maintenance commands.
func openRepository(configFile string, logger *zap.Logger) (*configs.Config, *repository.Repository, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, nil, err
	}

	return conf, repo, nil
}
