package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/config"
	"github.com/Bebric123/MedAnalyzer/session"
	"github.com/Bebric123/MedAnalyzer/tui"
)

func main() {
	cfg := config.Load()

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging setup:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	store := session.NewStore(cfg.SessionFile)
	client := api.New(cfg.APIURL, store)

	m := tui.NewModel(client, store, cfg.PollInterval, cfg.RedirectDelay)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// a 401 anywhere forces the login view, wherever the user was
	client.OnUnauthorized = func() {
		p.Send(tui.AuthExpiredMsg{})
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogging routes slog to a JSON file; the terminal belongs to the TUI.
func setupLogging(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
	return f, nil
}
