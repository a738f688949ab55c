package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"diplomacy-agent/internal/application/port/input"
	"diplomacy-agent/internal/di"
	"diplomacy-agent/internal/infrastructure/boardfile"
	"diplomacy-agent/internal/infrastructure/env"
)

func main() {
	rosterPath := flag.String("roster", "roster.yaml", "path to the game roster")
	boardPath := flag.String("board", "", "path to the engine's board snapshot (required)")
	initAgents := flag.Bool("init", false, "ask each model for opening goals before the round")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	timeout := flag.Duration("timeout", 10*time.Minute, "round deadline")
	flag.Parse()

	if *boardPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	envService := env.NewEnvService()

	snapshot, err := boardfile.Load(*boardPath)
	if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		RosterPath: *rosterPath,
		Debug:      envService.GetBool("DEBUG", false),
		Quiet:      *quiet,
		LogFile:    envService.Get("LOG_FILE"),
	}, envService)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer container.Close()

	if *initAgents {
		container.Logger.Info("Initializing agents")
		container.InitializeAgents(ctx)
	}

	container.Logger.Info("Round started", "phase", snapshot.Phase, "powers", len(container.Roster.Powers))

	result, err := container.RoundRunner.Run(ctx, input.RoundRequest{
		Phase:    snapshot.PhaseType,
		Board:    snapshot.Board(),
		Powers:   container.Roster.PowerList(),
		Possible: snapshot.Possible,
		Press:    snapshot.Press,
	})
	if err != nil {
		container.Logger.Error("Round failed", "error", err)
		fmt.Fprintf(os.Stderr, "Round failed: %v\n", err)
		os.Exit(1)
	}

	container.Logger.Info("Round completed", "phase", snapshot.Phase)

	heading := color.New(color.FgCyan, color.Bold)
	for _, power := range container.Roster.PowerList() {
		res, ok := result.Orders[power]
		if !ok {
			continue
		}
		heading.Printf("\n%s:\n", power)
		for _, order := range res.Orders {
			fmt.Printf("  %s\n", order)
		}
	}
}
