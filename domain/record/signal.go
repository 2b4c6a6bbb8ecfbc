package record

import "sync/atomic"

// StopSignal is the shared cancellation flag raised by the hotkey listener,
// the preview window, or a process signal, and polled by the recording loop
// at each cycle boundary. It is safe to trigger from any goroutine; the
// first trigger's reason is kept, later triggers are no-ops.
type StopSignal struct {
	fired  atomic.Bool
	reason atomic.Pointer[string]
}

// NewStopSignal returns an unfired signal.
func NewStopSignal() *StopSignal { return &StopSignal{} }

// Trigger raises the signal with the given reason. Only the first call
// records its reason.
func (s *StopSignal) Trigger(reason string) {
	if s.fired.CompareAndSwap(false, true) {
		s.reason.Store(&reason)
	}
}

// Stopped reports whether the signal has been raised.
func (s *StopSignal) Stopped() bool { return s.fired.Load() }

// Reason returns the first trigger's reason, or "" when unfired.
func (s *StopSignal) Reason() string {
	if p := s.reason.Load(); p != nil {
		return *p
	}
	return ""
}
