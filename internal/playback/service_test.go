// internal/playback/service_test.go
package playback

import (
	"errors"
	"slices"
	"testing"
	"testing/synctest"

	"github.com/llehouerou/wavesq/internal/player"
)

var library = map[string]string{
	"a": "/music/a.mp3",
	"b": "/music/b.mp3",
	"c": "/music/c.mp3",
}

func resolveLibrary(name string) (string, bool) {
	loc, ok := library[name]
	return loc, ok
}

func newTestService(t *testing.T, opts ...Option) (Service, *player.Mock) {
	t.Helper()
	p := player.NewMock()
	svc := New(p, resolveLibrary, opts...)
	t.Cleanup(func() { svc.Close() })
	return svc, p
}

func TestNew_SeedsQueue(t *testing.T) {
	svc, _ := newTestService(t, WithNames("a", "b"), WithLoop(true))

	snap := svc.Snapshot()

	if !slices.Equal(snap.Names, []string{"a", "b"}) {
		t.Errorf("Names = %v, want [a b]", snap.Names)
	}
	if snap.Current != "a" || snap.Index != 0 {
		t.Errorf("current = %q@%d, want a@0", snap.Current, snap.Index)
	}
	if !snap.Loop || !svc.Loop() {
		t.Error("Loop should be enabled")
	}
	if snap.State != StateStopped {
		t.Errorf("State = %v, want Stopped", snap.State)
	}
}

func TestService_Play(t *testing.T) {
	svc, p := newTestService(t, WithNames("a", "b"))
	sub := svc.Subscribe()

	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if calls := p.PlayCalls(); !slices.Equal(calls, []string{"/music/a.mp3"}) {
		t.Errorf("PlayCalls() = %v, want [/music/a.mp3]", calls)
	}
	if svc.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", svc.State())
	}
	select {
	case tr := <-sub.TrackChanged:
		if tr.Name != "a" || tr.Location != "/music/a.mp3" || tr.Index != 0 {
			t.Errorf("TrackChanged = %+v", tr)
		}
	default:
		t.Error("expected TrackChanged event")
	}
	select {
	case sc := <-sub.StateChanged:
		if sc.Previous != StateStopped || sc.Current != StatePlaying {
			t.Errorf("StateChanged = %+v", sc)
		}
	default:
		t.Error("expected StateChanged event")
	}
}

func TestService_Play_SkipsUnresolvable(t *testing.T) {
	svc, p := newTestService(t, WithNames("missing", "b"))
	sub := svc.Subscribe()

	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if calls := p.PlayCalls(); !slices.Equal(calls, []string{"/music/b.mp3"}) {
		t.Errorf("PlayCalls() = %v, want [/music/b.mp3]", calls)
	}
	select {
	case e := <-sub.Error:
		if e.Name != "missing" || !errors.Is(e.Err, ErrUnresolvable) {
			t.Errorf("Error = %+v", e)
		}
	default:
		t.Error("expected resolve error event")
	}
}

func TestService_Play_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc, _ := newTestService(t)
		if err := svc.Play(); !errors.Is(err, ErrEmptyQueue) {
			t.Errorf("Play() error = %v, want ErrEmptyQueue", err)
		}
	})

	t.Run("unresolvable", func(t *testing.T) {
		svc, p := newTestService(t, WithNames("x", "y"), WithLoop(true))
		if err := svc.Play(); !errors.Is(err, ErrUnresolvable) {
			t.Errorf("Play() error = %v, want ErrUnresolvable", err)
		}
		if len(p.PlayCalls()) != 0 {
			t.Errorf("PlayCalls() = %v, want none", p.PlayCalls())
		}
	})

	t.Run("player failure", func(t *testing.T) {
		svc, p := newTestService(t, WithNames("a"))
		sub := svc.Subscribe()
		decodeErr := errors.New("bad frame")
		p.SetPlayError(decodeErr)

		if err := svc.Play(); !errors.Is(err, decodeErr) {
			t.Errorf("Play() error = %v, want %v", err, decodeErr)
		}
		select {
		case e := <-sub.Error:
			if e.Operation != "play" || e.Name != "a" {
				t.Errorf("Error = %+v", e)
			}
		default:
			t.Error("expected play error event")
		}
	})
}

func TestService_NextPrevious(t *testing.T) {
	svc, p := newTestService(t, WithNames("a", "b", "c"))

	if err := svc.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(p.PlayCalls()) != 0 {
		t.Error("Next() while stopped should not start playback")
	}
	if svc.Snapshot().Current != "b" {
		t.Errorf("Current = %q, want b", svc.Snapshot().Current)
	}

	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := svc.Previous(); err != nil {
		t.Fatalf("Previous() error = %v", err)
	}
	want := []string{"/music/b.mp3", "/music/a.mp3"}
	if calls := p.PlayCalls(); !slices.Equal(calls, want) {
		t.Errorf("PlayCalls() = %v, want %v", calls, want)
	}
	if err := svc.Previous(); !errors.Is(err, ErrQueueEnd) {
		t.Errorf("Previous() at start error = %v, want ErrQueueEnd", err)
	}
}

func TestService_RemoveCurrentKeepsPlaying(t *testing.T) {
	svc, p := newTestService(t, WithNames("a", "b", "c"))
	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	sub := svc.Subscribe()

	svc.RemoveAt(0)

	if svc.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", svc.State())
	}
	select {
	case r := <-sub.CurrentRemoved:
		if r.Name != "a" {
			t.Errorf("CurrentRemoved.Name = %q, want a", r.Name)
		}
	default:
		t.Error("expected CurrentRemoved event")
	}
	select {
	case q := <-sub.QueueChanged:
		if !slices.Equal(q.Names, []string{"b", "c"}) {
			t.Errorf("QueueChanged.Names = %v, want [b c]", q.Names)
		}
	default:
		t.Error("expected QueueChanged event")
	}

	snap := svc.Snapshot()
	if !snap.Removed || snap.Current != "a" {
		t.Errorf("snapshot = %+v, want tombstoned a", snap)
	}

	if err := svc.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	want := []string{"/music/a.mp3", "/music/b.mp3"}
	if calls := p.PlayCalls(); !slices.Equal(calls, want) {
		t.Errorf("PlayCalls() = %v, want %v", calls, want)
	}
	if snap := svc.Snapshot(); snap.Index != 0 || snap.Current != "b" || snap.Removed {
		t.Errorf("snapshot = %+v, want b@0", snap)
	}
}

func TestService_JumpTo(t *testing.T) {
	svc, p := newTestService(t, WithNames("a", "b", "c"))

	if err := svc.JumpTo(2); err != nil {
		t.Fatalf("JumpTo() error = %v", err)
	}
	if len(p.PlayCalls()) != 0 {
		t.Error("JumpTo() while stopped should not start playback")
	}

	if err := svc.PlayAt(1); err != nil {
		t.Fatalf("PlayAt() error = %v", err)
	}
	if err := svc.JumpTo(1); err != nil {
		t.Fatalf("JumpTo() error = %v", err)
	}
	if err := svc.JumpTo(0); err != nil {
		t.Fatalf("JumpTo() error = %v", err)
	}
	want := []string{"/music/b.mp3", "/music/a.mp3"}
	if calls := p.PlayCalls(); !slices.Equal(calls, want) {
		t.Errorf("PlayCalls() = %v, want %v", calls, want)
	}

	if err := svc.PlayAt(5); !errors.Is(err, ErrQueueEnd) {
		t.Errorf("PlayAt(5) error = %v, want ErrQueueEnd", err)
	}
}

func TestService_Edits(t *testing.T) {
	svc, _ := newTestService(t, WithNames("a", "b"))
	sub := svc.Subscribe()

	svc.Append("c")
	svc.Insert("d", 0)
	svc.Move(0, 3)
	svc.RemoveNamed("b", true)
	svc.Shuffle()

	got := 0
	for range 5 {
		select {
		case <-sub.QueueChanged:
			got++
		default:
		}
	}
	if got != 5 {
		t.Errorf("QueueChanged events = %d, want 5", got)
	}
	snap := svc.Snapshot()
	if !slices.Equal(slices.Sorted(slices.Values(snap.Names)), []string{"a", "c", "d"}) {
		t.Errorf("Names = %v, want a c d in some order", snap.Names)
	}
	if snap.Current != "a" {
		t.Errorf("Current = %q, want a", snap.Current)
	}

	svc.Clear()
	if snap := svc.Snapshot(); len(snap.Names) != 0 {
		t.Errorf("Names after Clear = %v", snap.Names)
	}
}

func TestService_ToggleLoopAndPause(t *testing.T) {
	svc, _ := newTestService(t, WithNames("a"))

	if !svc.ToggleLoop() || svc.ToggleLoop() {
		t.Error("ToggleLoop() should flip the loop flag")
	}
	svc.SetLoop(true)
	if !svc.Loop() {
		t.Error("SetLoop(true) not applied")
	}

	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	svc.Pause()
	if svc.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", svc.State())
	}
	svc.Toggle()
	if svc.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", svc.State())
	}
	svc.Stop()
	if svc.State() != StateStopped {
		t.Errorf("State() = %v, want Stopped", svc.State())
	}
}

func TestService_TrackFinishedAdvances(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := player.NewMock()
		svc := New(p, resolveLibrary, WithNames("a", "b"))
		defer svc.Close()
		sub := svc.Subscribe()

		if err := svc.Play(); err != nil {
			t.Fatalf("Play() error = %v", err)
		}
		<-sub.TrackChanged

		p.SimulateFinished()
		synctest.Wait()

		tr := <-sub.TrackChanged
		if tr.Name != "b" || tr.Index != 1 {
			t.Errorf("TrackChanged = %+v, want b@1", tr)
		}

		p.SimulateFinished()
		synctest.Wait()

		if svc.State() != StateStopped {
			t.Errorf("State() = %v, want Stopped at the end of the queue", svc.State())
		}
	})
}

func TestService_TrackFinishedDropsRemovedCurrent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := player.NewMock()
		svc := New(p, resolveLibrary, WithNames("a", "b", "c"))
		defer svc.Close()

		if err := svc.Play(); err != nil {
			t.Fatalf("Play() error = %v", err)
		}
		svc.RemoveAt(0)

		p.SimulateFinished()
		synctest.Wait()

		snap := svc.Snapshot()
		if snap.Current != "b" || snap.Index != 0 || snap.Removed {
			t.Errorf("snapshot = %+v, want b@0", snap)
		}
		if !slices.Equal(snap.Names, []string{"b", "c"}) {
			t.Errorf("Names = %v, want [b c]", snap.Names)
		}
	})
}

func TestService_Unsubscribe(t *testing.T) {
	svc, _ := newTestService(t, WithNames("a"))
	sub := svc.Subscribe()

	svc.Unsubscribe(sub)
	svc.Append("b")

	<-sub.Done
	select {
	case <-sub.QueueChanged:
		t.Error("unsubscribed channel received an event")
	default:
	}
	svc.Unsubscribe(sub)
}

func TestService_Close(t *testing.T) {
	p := player.NewMock()
	svc := New(p, resolveLibrary, WithNames("a"))
	sub := svc.Subscribe()
	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	<-sub.Done
	if p.State() != player.Stopped {
		t.Errorf("player state = %v, want Stopped", p.State())
	}
	late := svc.Subscribe()
	<-late.Done
}

func TestService_TrackInfo(t *testing.T) {
	svc, _ := newTestService(t, WithNames("b"))

	if info := svc.TrackInfo(); info != nil {
		t.Errorf("TrackInfo() before play = %+v, want nil", info)
	}
	if err := svc.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if info := svc.TrackInfo(); info == nil || info.Path != "/music/b.mp3" {
		t.Errorf("TrackInfo() = %+v, want path /music/b.mp3", info)
	}
}
