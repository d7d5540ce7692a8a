// Package main is the robot scene viewer.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/config"
	"github.com/Faultbox/robowalk/internal/engine/scene"
	"github.com/Faultbox/robowalk/internal/logger"
	"github.com/Faultbox/robowalk/internal/viewer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// t = 0 is process start, before any asset loading
	clock := scene.NewClock()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, clock); err != nil {
		logger.Error("viewer failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config, clock *scene.Clock) error {
	logger.Info("=== Robowalk ===", zap.String("layout", cfg.Scene.Layout))

	v, err := viewer.New(cfg, clock)
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run()
}
