package client

import (
	"context"
	"fmt"
	"io"

	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
)

// App prints either the whole fetched document or a single setting.
type App struct {
	fetcher *ConfigFetcher
	setting string
	out     io.Writer

	logger *logger.Logger
}

func NewApp(fetcher *ConfigFetcher, cfg config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		fetcher: fetcher,
		setting: cfg.Setting,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	cfg, err := a.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch configuration: %w", err)
	}
	a.logger.Debug().Str("source", string(cfg.Source)).Msg("configuration fetched")

	if a.setting != "" {
		value, ok := cfg.GetSetting(a.setting)
		if !ok {
			return fmt.Errorf("%w: %s", ErrSettingNotFound, a.setting)
		}
		_, err = fmt.Fprintln(a.out, value)
		return err
	}

	data, err := cfg.Bytes()
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
