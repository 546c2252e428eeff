package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game page and API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringP("config", "c", "", "config file path (yaml, json or toml)")
	f.String("addr", ":8080", "address to listen on")
	f.String("static", "", "directory with the page's static files")
	f.String("presets", "", "YAML file with difficulty presets")
	f.String("log-file", "", "also write logs to this file, rotated by size")
	f.Int("log-max-size", 10, "rotate the log file at this many megabytes")
	f.Int("log-max-backups", 3, "rotated log files to keep")
	f.Int("log-max-age", 28, "days to keep rotated log files")
	f.Bool("development", false, "debug logging, any websocket origin, CORS for dev servers")
	f.Uint64("seed", 0, "seed mine placement (0 picks a random seed)")
	f.Duration("session-ttl", time.Hour, "drop sessions idle for this long (0 keeps them)")
}

func runServe(cmd *cobra.Command, args []string) error {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	if err := logging.Setup(log, logging.Options{
		Development: cfg.Development(),
		File:        cfg.LogFile,
		MaxSizeMB:   cfg.LogMaxSize,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAge,
	}); err != nil {
		return err
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	presets, err := loadPresets(cfg.PresetsFile)
	if err != nil {
		return err
	}

	a := app.New(log, cfg, presets)
	if err := a.Start(mainCtx); err != nil {
		log.Printf("exit reason: %s\n", err)
		return err
	}
	return nil
}
