//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(appName, execPath string, args ...string) error {
	if appName == "" || execPath == "" {
		return errors.New("enable autostart: app name and executable are required")
	}
	return runReg("enable autostart", "add", registryRunKey,
		"/v", appName,
		"/t", "REG_SZ",
		"/d", autostartCommandLine(execPath, args),
		"/f",
	)
}

func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return errors.New("disable autostart: app name is required")
	}
	return runReg("disable autostart", "delete", registryRunKey, "/v", appName, "/f")
}

func runReg(operation string, args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: reg %s: %w: %s", operation, args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// autostartCommandLine quotes the executable and every argument, so a home
// under "C:\Users\First Last" survives the Run key.
func autostartCommandLine(execPath string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, `"`+strings.Trim(execPath, `"`)+`"`)
	for _, arg := range args {
		parts = append(parts, windows.EscapeArg(arg))
	}
	return strings.Join(parts, " ")
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
