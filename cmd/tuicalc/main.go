package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"tuicalc/internal/calc"
	"tuicalc/internal/config"
	"tuicalc/internal/trace"
	"tuicalc/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tuicalc",
	Short: "Terminal calculator",
	Long: `tuicalc is a keypad calculator for the terminal.

Type digits and + - x / directly, press enter or = to evaluate,
backspace to delete and c to clear. The keypad also accepts mouse clicks.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runTUI(cmd.Context(), cfg)
	},
}

// runTUI starts the Bubble Tea program. Stdout belongs to the renderer, so
// logs go to cfg.DebugLog or nowhere.
func runTUI(ctx context.Context, cfg config.Config) error {
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "tuicalc")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	session, shutdown, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer shutdown()

	model := ui.NewAppModel(session, cfg).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// newSession creates a session that logs every evaluation and, when
// OTEL_EXPORTER_OTLP_ENDPOINT is set, exports it as a span.
func newSession(ctx context.Context) (*calc.Session, func(), error) {
	session := calc.NewSession(calc.LogObserver{Logger: log.Default()})

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("otlp exporter: %w", err)
	}
	if exporter == nil {
		return session, func() {}, nil
	}
	session.AddObserver(exporter)
	return session, func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(sctx); err != nil {
			log.Printf("otlp shutdown: %v", err)
		}
	}, nil
}

func main() {
	rootCmd.Version = versionString()
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tuicalc: %v\n", err)
		os.Exit(1)
	}
}
