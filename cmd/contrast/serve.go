package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
	"github.com/phyten/hsbcontrast/internal/logging"
	"github.com/phyten/hsbcontrast/internal/web"
)

func serveCmd(args []string, stderr io.Writer, env map[string]string) error {
	cli, err := parseArgs("serve", args, stderr)
	if err != nil {
		return err
	}
	if len(cli.positional) != 0 {
		return errors.New("usage: contrast serve [-p PORT]")
	}
	if cli.port < 0 || cli.port > 65535 {
		return fmt.Errorf("invalid port: %d", cli.port)
	}
	loaded, err := resolveSettings(cli, env)
	if err != nil {
		return err
	}
	logger, err := logging.New(cli.logLevel, cli.logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	base := engineopts.Defaults()
	loaded.Settings.ApplyToOptions(&base)
	srv, err := web.New(base, logger)
	if err != nil {
		return err
	}
	logger.Info("configuration resolved",
		zap.String("config_path", loaded.Path),
		zap.String("config_source", loaded.Where),
		zap.Float64("min_ratio", base.MinRatio),
		zap.String("strategy", base.Strategy),
		zap.Bool("clamp", base.Clamp),
		zap.Int("palette_size", len(base.Palette)),
	)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cli.port))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return web.Serve(ctx, ln, srv.Handler(), logger)
}
