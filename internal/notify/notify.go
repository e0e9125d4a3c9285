package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is one transient message shown to the user after a mutating
// action. Notices are not persisted anywhere.
type Notice struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier collects recent notices in a bounded ring and mirrors them to
// the log. Oldest notices fall off once the capacity is reached.
type Notifier struct {
	mu      sync.Mutex
	notices []Notice
	cap     int
	logger  *zerolog.Logger
}

func NewNotifier(capacity int, logger *zerolog.Logger) *Notifier {
	if capacity <= 0 {
		capacity = 50
	}
	return &Notifier{cap: capacity, logger: logger}
}

func (n *Notifier) Success(message string) {
	n.push(Notice{Level: LevelSuccess, Message: message, CreatedAt: time.Now()})
	n.logger.Info().Str("notice", message).Msg("notify success")
}

func (n *Notifier) Error(message string) {
	n.push(Notice{Level: LevelError, Message: message, CreatedAt: time.Now()})
	n.logger.Warn().Str("notice", message).Msg("notify error")
}

func (n *Notifier) push(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	if len(n.notices) > n.cap {
		n.notices = n.notices[len(n.notices)-n.cap:]
	}
}

// Recent returns a copy of the collected notices, oldest first.
func (n *Notifier) Recent() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, len(n.notices))
	copy(out, n.notices)
	return out
}
