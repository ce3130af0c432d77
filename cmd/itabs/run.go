package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/itabs/internal/config"
	"github.com/sant0-9/itabs/internal/document"
	"github.com/sant0-9/itabs/internal/profile"
	"github.com/sant0-9/itabs/internal/storage"
	"github.com/sant0-9/itabs/internal/tui"
)

// env is everything a command needs: config, an open backend and a loaded
// profile store.
type env struct {
	cfg   *config.Config
	kv    storage.KV
	store *profile.Store
}

func (e *env) Close() error {
	return e.kv.Close()
}

// openEnv resolves the config, installs the logger and loads the profile.
// Logs go to w; the TUI passes a file so the terminal stays clean.
func openEnv(ctx context.Context, configPath string, w io.Writer) (*env, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(cfg.Storage.Backend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	store := profile.NewStore(kv)
	store.Load(ctx)
	return &env{cfg: cfg, kv: kv, store: store}, nil
}

// logFile opens the TUI log, defaulting to itabs.log in the data directory.
func logFile(cfg *config.Config) (*os.File, error) {
	path := cfg.Log.File
	if path == "" {
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "itabs.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func runTUI(ctx context.Context, configPath string) error {
	// Resolve once up front to find the log file before anything logs.
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	f, err := logFile(cfg)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	e, err := openEnv(ctx, configPath, f)
	if err != nil {
		return err
	}
	defer e.Close()

	guidePath, err := e.cfg.Guide()
	if err != nil {
		return err
	}
	guide, err := document.LoadGuide(guidePath)
	if err != nil {
		return err
	}
	slog.Info("starting", "version", version, "guide", guidePath, "storage", e.cfg.Storage.Backend)

	app := tui.NewApp(ctx, tui.Options{
		Config: e.cfg,
		Store:  e.store,
		Guide:  guide,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
