package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"
)

func runLoop(t *testing.T) *Loop {
	t.Helper()
	l := NewLoop()
	go l.Run(context.Background())
	t.Cleanup(l.Stop)
	return l
}

func TestDispatchRunsInOrder(t *testing.T) {
	l := runLoop(t)

	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		i := i
		l.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	for i, v := range got {
		if v != i {
			t.Fatalf("task order = %v", got)
		}
	}
}

func TestScheduleRunsAfterPendingDispatches(t *testing.T) {
	l := runLoop(t)

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	l.Dispatch(func() {
		mu.Lock()
		got = append(got, "first")
		mu.Unlock()
		// Work enqueued by an earlier task still beats a scheduled task.
		l.Dispatch(func() {
			mu.Lock()
			got = append(got, "follow-up")
			mu.Unlock()
		})
	})
	l.Schedule(func() {
		mu.Lock()
		got = append(got, "scheduled")
		mu.Unlock()
		close(done)
	})
	<-done

	want := []string{"first", "follow-up", "scheduled"}
	mu.Lock()
	defer mu.Unlock()
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDispatchAfterStopIsDropped(t *testing.T) {
	l := NewLoop()
	go l.Run(context.Background())
	l.Stop()

	l.Dispatch(func() { t.Fatal("task ran after stop") })
	l.Schedule(func() { t.Fatal("scheduled task ran after stop") })
}

func TestDispatchFromTaskNeverBlocks(t *testing.T) {
	l := runLoop(t)

	done := make(chan struct{})
	l.Dispatch(func() {
		// Far more than any fixed queue buffer, all enqueued while the
		// loop goroutine is busy inside this task.
		for i := 0; i < 4096; i++ {
			l.Dispatch(func() {})
		}
		l.Dispatch(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop wedged on dispatch from within a task")
	}
}

func TestCoalescerMergesSameKey(t *testing.T) {
	l := runLoop(t)
	c := NewCoalescer(l.Dispatch)
	defer c.Close()

	var mu sync.Mutex
	runs := 0
	last := 0

	// Block the loop so all three posts land while the key is pending.
	gate := make(chan struct{})
	l.Dispatch(func() { <-gate })

	for i := 1; i <= 3; i++ {
		i := i
		c.Post("rebuild", func() {
			mu.Lock()
			runs++
			last = i
			mu.Unlock()
		})
	}
	close(gate)

	done := make(chan struct{})
	l.Dispatch(func() { close(done) })
	<-done

	mu.Lock()
	defer mu.Unlock()
	if runs != 1 {
		t.Fatalf("runs = %d, want coalesced single run", runs)
	}
	if last != 3 {
		t.Fatalf("last = %d, want latest callback", last)
	}
}
