package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// defaultScreenshotDir returns ~/.dragon/screenshots, or empty if home is unavailable.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "screenshots")
}

// saveScreenshot writes the plain text of s to a timestamped file in dir
// and returns its path.
func saveScreenshot(dir string, s *core.Screen, now time.Time) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("screenshot: no directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("dragon_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}
