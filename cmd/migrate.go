package cmd

import (
	"go.uber.org/zap"
)

type MigrateCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := toolLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err = repo.Migrate(); err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("database schema up to date")

	return nil
}
