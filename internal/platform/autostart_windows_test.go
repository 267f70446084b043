//go:build windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutostartCommandLineQuotesArgs(t *testing.T) {
	line := autostartCommandLine(`C:\Program Files\StudyHub\studyhub.exe`, []string{"--home", `C:\Users\First Last\StudyHub`, "desktop"})
	assert.Equal(t, `"C:\Program Files\StudyHub\studyhub.exe" --home "C:\Users\First Last\StudyHub" desktop`, line)
}
