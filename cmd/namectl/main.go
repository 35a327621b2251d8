// Package main 提供 namectl 命令行入口
//
// namectl 用于生成、比较标识符，以及编解码路由层的线上记录。
//
// 用法:
//
//	namectl [-config file.json] [-v] <command> [args]
//
// 命令:
//
//	gen [-n N]                 生成 N 个随机标识符
//	hash <file|->              计算内容标识符
//	closer <a> <b> <target>    比较 a 是否比 b 更接近 target
//	encode-name <name>         输出 Name 记录的十六进制编码
//	put-response [-error kind] <name> [payload]
//	                           输出 PutDataResponse 记录的十六进制编码
//	decode <hex>               按标签解码任意已登记的记录
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dep2p/go-dep2p-routing/config"
	"github.com/dep2p/go-dep2p-routing/pkg/lib/log"
)

var logger = log.Logger("cmd/namectl")

// Version 版本号
var Version = "0.1.0"

// errUsage 参数错误，已输出用法
var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}

// env 命令执行环境
type env struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("namectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "配置文件路径（JSON）")
	verbose := fs.Bool("v", false, "输出调试日志")
	showVersion := fs.Bool("version", false, "显示版本信息")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if *showVersion {
		fmt.Fprintf(stdout, "namectl %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	log.SetOutput(stderr)
	if err := cfg.Log.Apply(); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "未知命令: %s\n", rest[0])
		fs.Usage()
		return errUsage
	}
	logger.Debug("执行命令", "command", rest[0])
	return cmd.run(&env{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}, rest[1:])
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("配置错误: %w", err)
	}
	return cfg, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "用法: namectl [选项] <命令> [参数]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "命令:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "选项:")
	fs.PrintDefaults()
}
