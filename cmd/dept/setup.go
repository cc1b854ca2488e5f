package main

import (
	"context"

	"github.com/sandevgo/deptdir/internal/config"
	"github.com/sandevgo/deptdir/internal/service/ui"
	"github.com/sandevgo/deptdir/internal/transport/cli"
)

// loadConfig loads the runtime .env file and parses the app config from the environment.
func loadConfig(ctx context.Context) (*config.AppConfig, error) {
	if err := config.LoadEnvFile(ctx, config.GetRuntimePath()); err != nil {
		return nil, err
	}
	return config.ParseAppConfig()
}

func NewSession(ctx context.Context) (*cli.Session, error) {
	appCfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return cli.NewReadLine(appCfg, cli.WithReasonStyle(ui.RenderReason))
}
