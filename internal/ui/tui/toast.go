package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ToastLevel indicates the severity of a toast.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastError
)

// Toast is a transient message under the timer.
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

const toastLifetime = 6 * time.Second

func expireToasts(toasts []Toast, now time.Time) []Toast {
	kept := toasts[:0]
	for _, toast := range toasts {
		if now.Before(toast.Expires) {
			kept = append(kept, toast)
		}
	}
	return kept
}

// renderToasts stacks toasts vertically. Returns "" when there are none.
func renderToasts(styles Styles, toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := width - 4
	if toastWidth > 40 || toastWidth <= 0 {
		toastWidth = 40
	}

	rendered := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		style := styles.Toast
		if toast.Level == ToastError {
			style = styles.ToastErr
		}
		rendered = append(rendered, style.Width(toastWidth).Render(toast.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
