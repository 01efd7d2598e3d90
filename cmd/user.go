package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
)

type AddUserCmd struct {
	ConfigFile string        `default:".Foodgram.toml" help:"Path to config file" short:"c"`
	Username   string        `help:"Unique user name"                 required:""`
	Email      string        `help:"Email, used as the token identity" required:""`
	FirstName  string        `help:"First name"`
	LastName   string        `help:"Last name"`
	TokenTTL   time.Duration `default:"0s"             help:"Print a signed access token valid for this long"`
}

func (a *AddUserCmd) Run(ctx *Context) error {
	logger := toolLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(a.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	user, err := repo.AddUser(context.Background(), a.Username, a.Email, a.FirstName, a.LastName)
	if err != nil {
		logger.Error("error adding user", zap.String("username", a.Username), zap.Error(err))

		return err
	}

	logger.Info("user added", zap.Uint("id", user.ID), zap.String("uuid", user.UUID.String()))

	if a.TokenTTL > 0 {
		token, err := auth.NewAuthManager(conf.Auth, repo, logger).IssueToken(user, a.TokenTTL)
		if err != nil {
			return err
		}

		fmt.Println(token) //nolint:forbidigo // token is the command output
	}

	return nil
}
