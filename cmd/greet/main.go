// Package main provides the greet CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ZacharyZcR/greet/internal/cli"
	"github.com/ZacharyZcR/greet/internal/config"
	"github.com/ZacharyZcR/greet/internal/greeter"
	"github.com/ZacharyZcR/greet/internal/notify"
)

// defaultName is greeted when no name is given.
const defaultName = "World"

type options struct {
	configPath string
	notifier   string
	noColor    bool
	verbose    bool
	summary    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "greet [name...]",
		Short:         "向每个名字发送问候",
		Long:          `greet 为每个名字生成 "Hello, <name>!" 并交给所选的通知方式投递。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "配置文件路径 (YAML)")
	flags.StringVarP(&opts.notifier, "notifier", "n", "", "通知方式: console, log, record")
	flags.BoolVar(&opts.noColor, "no-color", false, "禁用彩色输出")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "详细模式：输出调试日志")
	flags.BoolVarP(&opts.summary, "summary", "s", false, "结束后打印运行摘要")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("notifier") {
		cfg.Notifier = opts.notifier
	}
	if opts.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}

	alertLevel, err := cfg.Log.ZapAlertLevel()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	n, err := notify.New(cfg.Notifier, notify.Options{
		Out:        cmd.OutOrStdout(),
		Color:      cfg.Color,
		Logger:     logger,
		AlertLevel: alertLevel,
	})
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{defaultName}
	}

	g := greeter.New(n, greeter.WithLogger(logger))
	summary := cli.Summary{Notifier: cfg.Notifier}
	var errs []error
	for _, name := range args {
		if err := g.Greet(name); err != nil {
			logger.Warn("greeting failed", zap.String("name", name), zap.Error(err))
			summary.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		summary.Delivered++
		summary.Bytes += int64(len(greeter.Message(name)))
	}

	if opts.summary {
		cli.NewReporter(cmd.ErrOrStderr(), summary).Print()
	}
	return errors.Join(errs...)
}

func newLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return logger, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
