package input

import (
	"testing"
	"time"

	hook "github.com/robotn/gohook"
)

func TestClassifyLeftKeys(t *testing.T) {
	for _, k := range []string{"q", "w", "e", "r", "t", "a", "s", "d", "f", "g", "z", "x", "c", "v", "b"} {
		if got := Classify(k); got != Left {
			t.Errorf("Classify(%q) = %s, want left", k, got)
		}
	}
	if len(leftKeys) != 15 {
		t.Errorf("left set has %d keys, want 15", len(leftKeys))
	}
}

func TestClassifyRightKeys(t *testing.T) {
	for _, k := range []string{"j", "y", "p", "1", "space", "enter", "shift", "tab", "", "qw"} {
		if got := Classify(k); got != Right {
			t.Errorf("Classify(%q) = %s, want right", k, got)
		}
	}
}

func TestClassifyIgnoresCase(t *testing.T) {
	if got := Classify("A"); got != Left {
		t.Errorf("Classify(\"A\") = %s, want left", got)
	}
}

func TestKeyNameLetters(t *testing.T) {
	for _, k := range []string{"a", "j", "q"} {
		ev := hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode[k]}
		if got := KeyName(ev); got != k {
			t.Errorf("KeyName(%s) = %q", k, got)
		}
	}
}

// fakeListener 用假的事件源代替 gohook
func fakeListener(buf int) (*Listener, chan hook.Event, *bool) {
	events := make(chan hook.Event)
	ended := false
	l := &Listener{
		out:   make(chan Hand, buf),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		start: func() chan hook.Event { return events },
		end:   func() { ended = true },
	}
	return l, events, &ended
}

func receive(t *testing.T, ch <-chan Hand) Hand {
	t.Helper()
	select {
	case h := <-ch:
		return h
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for classification")
		return ""
	}
}

func TestListenerForwardsKeyPresses(t *testing.T) {
	l, events, ended := fakeListener(queueSize)
	out := l.Start()

	events <- hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode["a"]}
	if got := receive(t, out); got != Left {
		t.Errorf("a -> %s, want left", got)
	}

	// 松开和字符事件不算
	events <- hook.Event{Kind: hook.KeyUp, Keycode: hook.Keycode["a"]}
	events <- hook.Event{Kind: hook.KeyDown, Keychar: 'a'}
	events <- hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode["j"]}
	if got := receive(t, out); got != Right {
		t.Errorf("j -> %s, want right", got)
	}

	l.Stop()
	if !*ended {
		t.Error("Stop should remove the hook")
	}
	l.Stop()
}

func TestListenerDropsWhenQueueFull(t *testing.T) {
	l, events, _ := fakeListener(1)
	out := l.Start()

	events <- hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode["a"]}
	events <- hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode["j"]}
	// 第三个事件能送进去说明前面的发送没有阻塞
	events <- hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode["j"]}

	if got := receive(t, out); got != Left {
		t.Errorf("first queued = %s, want left", got)
	}
	l.Stop()
}

func TestListenerSurvivesHookPanic(t *testing.T) {
	l := &Listener{
		out:   make(chan Hand, 1),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		start: func() chan hook.Event { panic("no display") },
		end:   func() {},
	}
	l.Start()
	select {
	case <-l.done:
	case <-time.After(time.Second):
		t.Fatal("listener goroutine did not exit")
	}
	l.Stop()
}

func TestStopWithoutStart(t *testing.T) {
	l, _, ended := fakeListener(1)
	l.Stop()
	if *ended {
		t.Error("Stop without Start should not touch the hook")
	}
}
