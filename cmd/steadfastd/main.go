package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courierkit/steadfast/internal/config"
	"github.com/courierkit/steadfast/internal/events"
	"github.com/courierkit/steadfast/internal/log"
	"github.com/courierkit/steadfast/internal/metrics"
	"github.com/courierkit/steadfast/internal/tui/watch"
	"github.com/courierkit/steadfast/internal/webhook"
)

var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
)

func main() {
	os.Exit(runCLI(os.Args[1:]))
}

func runCLI(cliArgs []string) int {
	if len(cliArgs) < 1 {
		printUsage()
		return 1
	}

	cmd := cliArgs[0]
	args := cliArgs[1:]

	switch cmd {
	case "start":
		return runStart(args, false)
	case "watch":
		return runStart(args, true)
	case "checksum":
		return runChecksum(args)
	case "version", "--version":
		fmt.Printf("steadfastd %s (%s)\n", version, gitCommit)
		return 0
	case "help", "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Print(`steadfastd - Steadfast courier webhook receiver

Usage:
  steadfastd start    [--config path]   Run the webhook receiver
  steadfastd watch    [--config path]   Run the receiver with a live event view
  steadfastd checksum <config path>     Write BLAKE3 checksums for a config file
  steadfastd version                    Print version
`)
}

func runStart(args []string, withTUI bool) int {
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	configPath := fs.String("config", "./config.yaml", "path to config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	log.Setup(cfg.LogLevel)
	logger := log.WithComponent("steadfastd")
	metrics.Register()

	bus := events.NewBus()
	handler, err := webhook.New(webhook.Config{
		Token:    cfg.Webhook.Token,
		SkipAuth: cfg.Webhook.SkipAuth,
		Bus:      bus,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if cfg.Webhook.SkipAuth {
		logger.Warn("webhook authentication is disabled")
	}

	server := webhook.NewServer(webhook.ServerConfig{
		Listen:      cfg.Webhook.Listen,
		MaxBodySize: cfg.Webhook.MaxBodySize,
	}, handler, log.WithComponent("webhook"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if withTUI {
		return runWithTUI(ctx, stop, server, bus)
	}

	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server failed", "error", err)
		return 1
	}
	return 0
}

// runWithTUI runs the server in the background and the watch TUI in the
// foreground; quitting the TUI stops the server.
func runWithTUI(ctx context.Context, stop func(), server *webhook.Server, bus *events.Bus) int {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	program := tea.NewProgram(watch.New(bus))
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		<-errCh
		return 1
	}
	stop()
	<-errCh
	return 0
}

func runChecksum(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: steadfastd checksum <config path>")
		return 1
	}
	if err := config.GenerateChecksums(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("checksums written for %s\n", args[0])
	return 0
}
