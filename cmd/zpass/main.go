package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpass/internal/cli"
	"github.com/zarlcorp/zpass/internal/config"
	"github.com/zarlcorp/zpass/internal/generator"
	"github.com/zarlcorp/zpass/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpass"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	root := cli.NewRootCommand(version, runTUI)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "zpass: %v\n", err)
		_ = app.Close()
		cancel()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config) error {
	m := tui.New(version, generator.New(), cfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
