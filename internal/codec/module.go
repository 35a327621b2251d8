package codec

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/dep2p/go-dep2p-routing/config"
	"github.com/dep2p/go-dep2p-routing/pkg/lib/log"
	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
	"github.com/dep2p/go-dep2p-routing/pkg/messages"
)

var logger = log.Logger("internal/codec")

// RecordGroup 协作方记录类型的值组名
const RecordGroup = "wire_records"

// Params Codec 模块依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Kinds      []wire.Kind    `group:"wire_records"`
}

// Result Codec 模块提供的结果
type Result struct {
	fx.Out

	Registry *wire.Registry
	Codec    *Codec
	Config   config.WireConfig
}

// Module 返回 Codec Fx 模块
//
// 生命周期:
//   - OnStart: 记录已登记的标签
func Module() fx.Option {
	return fx.Module("codec",
		fx.Provide(ProvideCodec),
		fx.Invoke(registerLifecycle),
	)
}

// RecordKind 把记录类型加入 wire_records 值组
func RecordKind(kind wire.Kind) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() wire.Kind { return kind },
			fx.ResultTags(`group:"`+RecordGroup+`"`),
		),
	)
}

// ProvideCodec 构建注册表和编解码入口
func ProvideCodec(p Params) (Result, error) {
	cfg := config.DefaultWireConfig()
	if p.UnifiedCfg != nil {
		cfg = p.UnifiedCfg.Wire
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	reg := wire.NewRegistry()
	if err := messages.RegisterCore(reg); err != nil {
		return Result{}, fmt.Errorf("register core records: %w", err)
	}
	if err := reg.RegisterAll(p.Kinds...); err != nil {
		logger.Error("登记协作方记录类型失败", "error", err)
		return Result{}, fmt.Errorf("register records: %w", err)
	}

	return Result{
		Registry: reg,
		Codec:    New(reg, cfg),
		Config:   cfg,
	}, nil
}

func registerLifecycle(lc fx.Lifecycle, c *Codec) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("编解码模块已就绪",
				"tags", len(c.Registry().Tags()),
				"maxFieldSize", c.Config().MaxFieldSize,
				"validateTags", c.Config().ValidateTags)
			return nil
		},
	})
}
