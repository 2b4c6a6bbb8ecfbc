package hotkey

import (
	"log/slog"
	"sync"

	hook "github.com/robotn/gohook"
)

// DefaultKey is the global hotkey that stops a recording.
const DefaultKey = "f5"

// Listener watches for a single global hotkey from its own goroutine and
// invokes a callback on every press. It shares no state with the recording
// loop beyond that callback. The underlying hook is process-global, so at
// most one Listener may be active at a time.
type Listener struct {
	key     string
	logger  *slog.Logger
	endOnce sync.Once
	done    chan bool
}

// NewListener returns a listener for the given key name (e.g. "f5").
func NewListener(key string, logger *slog.Logger) *Listener {
	if key == "" {
		key = DefaultKey
	}
	return &Listener{key: key, logger: logger}
}

// Start registers the hotkey and begins dispatching events in the
// background. onPress fires on the hook's goroutine and must only perform
// cheap, thread-safe work, such as raising a stop signal.
func (l *Listener) Start(onPress func()) {
	hook.Register(hook.KeyDown, []string{l.key}, func(hook.Event) {
		if l.logger != nil {
			l.logger.Debug("stop hotkey pressed", "key", l.key)
		}
		if onPress != nil {
			onPress()
		}
	})
	l.done = hook.Process(hook.Start())
}

// Stop tears the global hook down. Safe to call more than once and from any
// goroutine; callbacks stop firing once it returns.
func (l *Listener) Stop() {
	l.endOnce.Do(func() {
		hook.End()
		if l.logger != nil {
			l.logger.Debug("hotkey listener stopped", "key", l.key)
		}
	})
}

// Done exposes the dispatch goroutine's completion channel, closed after
// Stop. Nil before Start.
func (l *Listener) Done() <-chan bool { return l.done }
