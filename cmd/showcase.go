package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/swipemodal/internal/config"
	"github.com/marcus/swipemodal/pkg/showcase"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runShowcase(cmd *cobra.Command, args []string) error {
	base := getBaseDir()

	cfg, err := config.Load(config.Path(base, configPath), cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(resolvePath(base, cfg.LogFile), debug)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("swipemodal needs an interactive terminal")
	}

	props, err := cfg.ModalProps()
	if err != nil {
		return err
	}
	body, err := loadBody(resolvePath(base, cfg.BodyFile))
	if err != nil {
		return err
	}

	m := showcase.New(showcase.Options{
		Props:  props,
		Body:   body,
		FPS:    cfg.FPS,
		Logger: logger,
	})

	slog.Info("starting showcase", "direction", cfg.Direction, "duration_ms", cfg.AnimationMS, "fps", cfg.FPS)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		slog.Error("showcase", "err", err)
		return fmt.Errorf("run showcase: %w", err)
	}
	return nil
}

// resolvePath makes a relative path relative to base.
func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// loadBody reads the markdown body file. An empty path selects the default
// body.
func loadBody(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}
