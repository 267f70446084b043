package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"studyhub/internal/platform"
)

// AppName names the per-user configuration directory.
const AppName = "StudyHub"

// HomeEnv overrides the StudyHub home directory.
const HomeEnv = "STUDYHUB_HOME"

type homeKey struct{}

// WithHome stores the StudyHub home path in the context.
func WithHome(ctx context.Context, home string) context.Context {
	return context.WithValue(ctx, homeKey{}, home)
}

// HomeFrom returns the StudyHub home path from the context, if set.
func HomeFrom(ctx context.Context) (string, bool) {
	home, ok := ctx.Value(homeKey{}).(string)
	return home, ok && home != ""
}

// MustHomeFrom returns the home path from the context, or panics if not set.
func MustHomeFrom(ctx context.Context) string {
	if home, ok := HomeFrom(ctx); ok {
		return home
	}
	panic("studyhub home missing from context")
}

// ResolveHome returns the StudyHub home directory: the override, then
// STUDYHUB_HOME, then StudyHub inside the OS configuration directory.
func ResolveHome(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	if env := os.Getenv(HomeEnv); env != "" {
		return filepath.Clean(env), nil
	}
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(configDir, AppName), nil
}
