package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/passdrill/internal/common/clock"
	"github.com/KirkDiggler/passdrill/internal/common/uuid"
	"github.com/KirkDiggler/passdrill/internal/config"
	"github.com/KirkDiggler/passdrill/internal/drill"
	"github.com/KirkDiggler/passdrill/internal/layout"
	"github.com/KirkDiggler/passdrill/internal/models"
	"github.com/KirkDiggler/passdrill/internal/render"
	"github.com/KirkDiggler/passdrill/internal/report"
	"github.com/KirkDiggler/passdrill/internal/services/simulation"
	log "github.com/sirupsen/logrus"
)

const (
	modeRun     = "run"
	modePredict = "predict"
	modeSweep   = "sweep"
	modeVerify  = "verify"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	var (
		mode       = flag.String("mode", modeRun, "One of run, predict, sweep or verify")
		players    = flag.Int("players", env.Players, "Number of players")
		lines      = flag.Int("lines", env.Lines, "Number of lines")
		startLine  = flag.Int("start-line", env.StartLine, "Starting line")
		direction  = flag.String("direction", env.Direction, "Starting direction of the drill, left or right")
		passes     = flag.Int("passes", env.Passes, "Number of passes")
		inf        = flag.Bool("inf", false, "Pass until interrupted, or predict without a pass limit")
		lineConfig = flag.String("line-config", env.LineConfig, "YAML file with the line configuration, overrides -lines and -players")
		playerID   = flag.Int("player-id", env.PlayerID, "Player to predict for")
		verbose    = flag.Bool("verbose", false, "Report the oscillations of every player")
		frames     = flag.Bool("frames", false, "Print the lines after every pass")
		seed       = flag.Int64("seed", 0, "Seed for the random layouts of verify mode")
		maxLines   = flag.Int("max-lines", 100, "Largest line count of sweep and verify modes")
		coeff      = flag.Int("coefficient", 10, "Sweep player counts up to lines times this coefficient")
		trials     = flag.Int("trials", 1000, "Number of random layouts checked by verify mode")
		maxPerLine = flag.Int("max-per-line", 10, "Largest line size of the random layouts of verify mode")
	)
	flag.Parse()

	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(env.LogLevel)
	if err != nil {
		logger.Fatalf("Invalid log level %q: %v", env.LogLevel, err)
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var renderer render.Renderer
	if *frames {
		renderer = render.NewText(os.Stdout)
	}

	svc, err := simulation.New(&simulation.Config{
		Reporter:        report.NewLog(&report.Config{Logger: logger}),
		Renderer:        renderer,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		LayoutGenerator: layout.New(&layout.Config{Seed: *seed}),
		Logger:          logger,
	})
	if err != nil {
		logger.Fatalf("Failed to create simulation service: %v", err)
	}

	totalPasses := *passes
	if *inf {
		totalPasses = drill.NoPassLimit
	}

	switch *mode {
	case modeRun, modePredict:
		drillCfg, err := buildDrillConfig(*lines, *players, *startLine, *direction, *lineConfig)
		if err != nil {
			logger.Fatalf("Invalid drill: %v", err)
		}

		if *mode == modeRun {
			_, err = svc.RunDrill(ctx, &simulation.RunDrillInput{
				Config:      drillCfg,
				TotalPasses: totalPasses,
				Verbose:     *verbose,
			})
		} else {
			_, err = svc.PredictOscillation(ctx, &simulation.PredictOscillationInput{
				Config:    drillCfg,
				PlayerID:  *playerID,
				PassLimit: totalPasses,
			})
		}
		if err != nil {
			logger.Fatalf("Failed to %s drill: %v", *mode, err)
		}
	case modeSweep:
		if _, err := svc.FindPerfectDrills(ctx, &simulation.FindPerfectDrillsInput{
			MaxLines:           *maxLines,
			PlayersCoefficient: *coeff,
			Passes:             *passes,
		}); err != nil {
			logger.Fatalf("Failed to find perfect drills: %v", err)
		}
	case modeVerify:
		if _, err := svc.VerifyPredictor(ctx, &simulation.VerifyPredictorInput{
			Trials:            *trials,
			MaxLines:          *maxLines,
			MaxPlayersPerLine: *maxPerLine,
		}); err != nil {
			logger.Fatalf("Failed to verify predictor: %v", err)
		}
	default:
		logger.Fatalf("Unknown mode %q", *mode)
	}
}

// buildDrillConfig combines the flags with the optional line configuration file
func buildDrillConfig(lines, players, startLine int, direction, lineConfigPath string) (*drill.Config, error) {
	cfg := &drill.Config{
		NumLines:     lines,
		NumPlayers:   players,
		StartingLine: startLine,
		Direction:    models.Direction(direction),
	}

	if lineConfigPath == "" {
		return cfg, nil
	}

	lineCfg, err := config.LoadLineConfig(lineConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", lineConfigPath, err)
	}
	lineCfg.ApplyTo(cfg)

	return cfg, nil
}
