// Package notification carries short user-facing messages out of the storefront core.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// DefaultDisplayDuration is how long a UI should show a notification
const DefaultDisplayDuration = 3 * time.Second

type Notification struct {
	Message  string        `json:"message"`
	Level    Level         `json:"level"`
	Duration time.Duration `json:"duration"`
}

func Info(message string) Notification    { return newNotification(message, LevelInfo) }
func Success(message string) Notification { return newNotification(message, LevelSuccess) }
func Error(message string) Notification   { return newNotification(message, LevelError) }

func newNotification(message string, level Level) Notification {
	return Notification{Message: message, Level: level, Duration: DefaultDisplayDuration}
}

// Notifier displays notifications. Implementations must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the global zerolog logger
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n Notification) {
	var ev *zerolog.Event
	switch n.Level {
	case LevelError:
		ev = log.Warn()
	default:
		ev = log.Info()
	}
	ev.Str("component", "notification").
		Str("level", string(n.Level)).
		Dur("duration", n.Duration).
		Msg(n.Message)
}

// Recorder keeps every notification in memory
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{notifications: make([]Notification, 0)}
}

func (r *Recorder) Notify(ctx context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// All returns the recorded notifications, oldest first
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

// Drain returns and forgets the recorded notifications
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notifications
	r.notifications = make([]Notification, 0)
	return out
}
