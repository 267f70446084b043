package ticker

import "time"

// NotificationType defines the type of Ticker notification.
type NotificationType string

const (
	NotificationTick NotificationType = "tick"
	NotificationDone NotificationType = "done"
)

// Notification is a message from the background countdown to its owner.
type Notification struct {
	Type NotificationType
	Left time.Duration
}

type commandType int

const (
	commandStart commandType = iota
	commandPause
	commandResume
	commandStop
)

type command struct {
	Type     commandType
	Duration time.Duration
}
