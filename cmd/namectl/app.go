package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-dep2p-routing/config"
	"github.com/dep2p/go-dep2p-routing/internal/codec"
)

// withCodec 启动 Fx 应用，在其生命周期内执行 fn
func withCodec(cfg *config.Config, fn func(*codec.Codec) error) error {
	var c *codec.Codec
	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.StartTimeout(cfg.App.StartTimeout.Duration()),
		fx.StopTimeout(cfg.App.StopTimeout.Duration()),
		fx.Supply(cfg),
		codec.Module(),
		fx.Populate(&c),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("停止应用失败", "error", err)
		}
	}()

	return fn(c)
}
