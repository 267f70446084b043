//go:build windows

package platform

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procGetLastInputInfo = windows.NewLazySystemDLL("user32.dll").NewProc("GetLastInputInfo")

// lastInputInfo mirrors LASTINPUTINFO.
type lastInputInfo struct {
	size uint32
	time uint32
}

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return idleProvider{}
}

// IdleDuration compares the last input tick with the system tick count. Both
// are taken modulo 2^32 so the result survives the 49.7 day wrap.
func (idleProvider) IdleDuration() (time.Duration, error) {
	if err := procGetLastInputInfo.Find(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIdleUnsupported, err)
	}

	info := lastInputInfo{size: uint32(unsafe.Sizeof(lastInputInfo{}))}
	ok, _, callErr := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return 0, fmt.Errorf("get last input info: %w", callErr)
	}

	now := uint32(windows.GetTickCount64())
	return time.Duration(now-info.time) * time.Millisecond, nil
}
