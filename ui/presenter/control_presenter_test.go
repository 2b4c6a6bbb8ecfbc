package presenter

import (
	"testing"
)

type mockTrigger struct{ reasons []string }

func (m *mockTrigger) Trigger(reason string) { m.reasons = append(m.reasons, reason) }

func TestControlPresenter_Reasons(t *testing.T) {
	trig := &mockTrigger{}
	c := NewControlPresenter(trig, nil)

	c.StopClicked()
	c.QuitKey()
	c.WindowClosed()

	want := []string{"stop button", "q pressed", "window closed"}
	if len(trig.reasons) != len(want) {
		t.Fatalf("got %d triggers, want %d", len(trig.reasons), len(want))
	}
	for i, r := range want {
		if trig.reasons[i] != r {
			t.Errorf("trigger %d = %q, want %q", i, trig.reasons[i], r)
		}
	}
}

func TestControlPresenter_NilSafe(t *testing.T) {
	var c *ControlPresenter
	c.StopClicked()
	NewControlPresenter(nil, nil).WindowClosed()
}
