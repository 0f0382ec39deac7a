package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenFile opens a file with the OS default application.
func OpenFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// Start() detaches the process so showcase can exit while the browser
	// stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}

// truncate shortens a string for table display, never cutting mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
