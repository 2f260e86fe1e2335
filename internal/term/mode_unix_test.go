//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

func TestWatchSignalsRestoresAndExits(t *testing.T) {
	var restored atomic.Int32
	codes := make(chan int, 1)
	stop := watchSignals(func() error {
		restored.Add(1)
		return nil
	}, func(code int) { codes <- code })
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}

	select {
	case code := <-codes:
		if code != 130 {
			t.Errorf("exit code = %d, want 130", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no exit after SIGTERM")
	}
	if n := restored.Load(); n != 1 {
		t.Errorf("restore ran %d times, want 1", n)
	}
}

func TestWatchSignalsStop(t *testing.T) {
	var stoppedRestores atomic.Int32
	stop := watchSignals(func() error {
		stoppedRestores.Add(1)
		return nil
	}, func(int) { stoppedRestores.Add(100) })
	stop()
	stop()

	// A second watcher keeps the process alive while the signal is delivered.
	codes := make(chan int, 1)
	stopLive := watchSignals(func() error { return nil }, func(code int) { codes <- code })
	defer stopLive()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatal(err)
	}
	select {
	case <-codes:
	case <-time.After(5 * time.Second):
		t.Fatal("live watcher saw no signal")
	}
	// Give a leaked watcher time to run before checking it did not.
	time.Sleep(50 * time.Millisecond)
	if n := stoppedRestores.Load(); n != 0 {
		t.Errorf("stopped watcher ran (counter %d)", n)
	}
}
