package playback

import (
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription(defaultEventBuffer)

		sub.sendQueue(QueueChange{Names: []string{"a"}, Index: 0})
		sub.sendRemoved(CurrentRemoval{Name: "a"})
		sub.sendTrack(TrackChange{Name: "b", Index: 1})
		sub.sendState(StateChange{Previous: StateStopped, Current: StatePlaying})
		sub.sendError(ErrorEvent{Operation: "resolve", Name: "c", Err: ErrUnresolvable})

		if q := <-sub.QueueChanged; len(q.Names) != 1 || q.Names[0] != "a" {
			t.Errorf("QueueChanged.Names = %v, want [a]", q.Names)
		}
		if r := <-sub.CurrentRemoved; r.Name != "a" {
			t.Errorf("CurrentRemoved.Name = %q, want a", r.Name)
		}
		if tr := <-sub.TrackChanged; tr.Index != 1 || tr.Name != "b" {
			t.Errorf("TrackChanged = %+v, want b@1", tr)
		}
		if s := <-sub.StateChanged; s.Current != StatePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", s.Current)
		}
		if e := <-sub.Error; e.Name != "c" {
			t.Errorf("Error.Name = %q, want c", e.Name)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription(1)
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	const size = 4
	sub := newSubscription(size)

	for range size + 5 {
		sub.sendRemoved(CurrentRemoval{})
	}

	count := 0
	for {
		select {
		case <-sub.CurrentRemoved:
			count++
		default:
			if count != size {
				t.Errorf("received %d events, want %d (buffer size)", count, size)
			}
			return
		}
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state  State
		want   string
		active bool
	}{
		{StateStopped, "Stopped", false},
		{StatePlaying, "Playing", true},
		{StatePaused, "Paused", true},
		{State(42), "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.state.IsActive(); got != tt.active {
			t.Errorf("%s.IsActive() = %v, want %v", tt.want, got, tt.active)
		}
	}
}
