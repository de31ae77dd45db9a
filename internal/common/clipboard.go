package common

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// ReadClipboard returns the current text content of the system clipboard.
// Callers should treat a failed read as empty input rather than aborting.
func ReadClipboard() (string, error) {
	if text, err := clipboard.ReadAll(); err == nil {
		return text, nil
	}
	return readClipboardFallback()
}

// readClipboardFallback shells out to the platform clipboard utility when
// the library read is unavailable (e.g. no cgo clipboard backend).
func readClipboardFallback() (string, error) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// Use PowerShell to get the clipboard on Windows
		cmd = exec.Command("powershell", "-Command", "Get-Clipboard -Raw")
	case "darwin":
		// Use pbpaste on macOS
		cmd = exec.Command("pbpaste")
	case "linux":
		// Try xclip first, then xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard", "-o")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--output")
		} else {
			return "", fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	default:
		return "", fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
