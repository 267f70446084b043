package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrAlreadyRunning indicates another timer already holds the home.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minInstancePort = 20000
	maxInstancePort = 39999
)

// InstanceGuard keeps one timer per StudyHub home. It holds a loopback port
// derived from the app name and the home path.
type InstanceGuard struct {
	listener net.Listener
	home     string
}

// AcquireSingleInstance claims home for this process. Equivalent spellings of
// the same directory map to the same guard.
func AcquireSingleInstance(appName, home string) (*InstanceGuard, error) {
	key, err := instanceKey(appName, home)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", instancePort(key)))
	if err != nil {
		return nil, fmt.Errorf("%w for %s", ErrAlreadyRunning, home)
	}
	return &InstanceGuard{listener: listener, home: home}, nil
}

// Release frees the home for other processes.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Home returns the guarded directory.
func (guard *InstanceGuard) Home() string {
	if guard == nil {
		return ""
	}
	return guard.home
}

// Address returns the bound loopback address.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

func instanceKey(appName, home string) (string, error) {
	if appName == "" {
		return "", errors.New("single instance: app name is empty")
	}
	absolute, err := filepath.Abs(home)
	if err != nil {
		return "", fmt.Errorf("single instance: %w", err)
	}
	absolute = filepath.Clean(absolute)
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		absolute = strings.ToLower(absolute)
	}
	return appName + "\x00" + absolute, nil
}

func instancePort(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return minInstancePort + int(hash.Sum32()%uint32(maxInstancePort-minInstancePort+1))
}
