// Package log 提供统一日志接口
//
// 基于 Go 标准库 log/slog 封装。各组件通过 Logger(component) 获取
// 懒加载 logger，每次调用时使用当前的 slog.Default()，因此可以在运行时
// 切换输出目标或级别。
//
// 日志级别可以通过环境变量 DEP2P_LOG_LEVEL 设置（debug/info/warn/error），
// 格式可以通过 DEP2P_LOG_FORMAT 设置（text/json）。
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// 环境变量
const (
	EnvLevel  = "DEP2P_LOG_LEVEL"
	EnvFormat = "DEP2P_LOG_FORMAT"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	level            = new(slog.LevelVar)
	json   bool
)

// ParseLevel 解析日志级别字符串
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("log: unknown level %q", s)
	}
}

// SetOutput 设置日志输出目标
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
	rebuild()
}

// SetLevel 设置日志级别
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetJSON 切换 JSON 输出格式
func SetJSON(enabled bool) {
	mu.Lock()
	json = enabled
	mu.Unlock()
	rebuild()
}

// Discard 丢弃所有日志输出
//
// 主要用于测试和命令行工具的安静模式。
func Discard() {
	SetOutput(io.Discard)
}

func rebuild() {
	mu.Lock()
	defer mu.Unlock()
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(output, opts)
	} else {
		h = slog.NewTextHandler(output, opts)
	}
	slog.SetDefault(slog.New(h))
}

// ============================================================================
//                              LazyLogger
// ============================================================================

// LazyLogger 懒加载 logger
//
// 使用方式：
//
//	var logger = log.Logger("wire/registry")
//	logger.Debug("注册记录类型", "tag", tag)
type LazyLogger struct {
	component string
}

// Logger 返回带组件名的 LazyLogger
func Logger(component string) *LazyLogger {
	return &LazyLogger{component: component}
}

// Debug 输出 Debug 级别日志
func (l *LazyLogger) Debug(msg string, args ...any) {
	l.With().Debug(msg, args...)
}

// Info 输出 Info 级别日志
func (l *LazyLogger) Info(msg string, args ...any) {
	l.With().Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *LazyLogger) Warn(msg string, args ...any) {
	l.With().Warn(msg, args...)
}

// Error 输出 Error 级别日志
func (l *LazyLogger) Error(msg string, args ...any) {
	l.With().Error(msg, args...)
}

// With 返回附加了组件名和额外属性的 *slog.Logger
func (l *LazyLogger) With(args ...any) *slog.Logger {
	return slog.Default().With("component", l.component).With(args...)
}

// Component 返回组件名
func (l *LazyLogger) Component() string {
	return l.component
}

func init() {
	if lvl, err := ParseLevel(os.Getenv(EnvLevel)); err == nil {
		level.Set(lvl)
	}
	json = strings.EqualFold(os.Getenv(EnvFormat), "json")
	rebuild()
}
