package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
)

const appName = "devmood"

// ConfigDir returns the per-user directory for devmood files.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// ClipboardAvailable reports whether a system clipboard can be reached.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on %s", runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
