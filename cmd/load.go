package cmd

import (
	"context"
	"os"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/seed"
)

type LoadIngredientsCmd struct {
	ConfigFile string `default:".Foodgram.toml"        help:"Path to config file"                         short:"c"`
	File       string `default:"data/ingredients.json" help:"JSON array of {name, measurement_unit}" short:"f"`
}

func (l *LoadIngredientsCmd) Run(ctx *Context) error {
	logger := toolLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	file, err := os.Open(l.File)
	if err != nil {
		return err
	}
	defer file.Close()

	ingredients, err := seed.DecodeIngredients(file)
	if err != nil {
		logger.Error("error reading ingredients", zap.String("file", l.File), zap.Error(err))

		return err
	}

	_, repo, err := openRepository(l.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	created, err := repo.SeedIngredients(context.Background(), ingredients)
	if err != nil {
		logger.Error("error loading ingredients", zap.Error(err))

		return err
	}

	logger.Info("ingredients loaded", zap.Int("read", len(ingredients)), zap.Int64("created", created))

	return nil
}

type LoadTagsCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file"       short:"c"`
	File       string `default:"data/tags.json" help:"JSON array of {name, slug}" short:"f"`
}

func (l *LoadTagsCmd) Run(ctx *Context) error {
	logger := toolLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	file, err := os.Open(l.File)
	if err != nil {
		return err
	}
	defer file.Close()

	tags, err := seed.DecodeTags(file)
	if err != nil {
		logger.Error("error reading tags", zap.String("file", l.File), zap.Error(err))

		return err
	}

	_, repo, err := openRepository(l.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	created, err := repo.SeedTags(context.Background(), tags)
	if err != nil {
		logger.Error("error loading tags", zap.Error(err))

		return err
	}

	logger.Info("tags loaded", zap.Int("read", len(tags)), zap.Int64("created", created))

	return nil
}
