package editor

import (
	"testing"
	"time"
)

func TestQueuePaintKeepsLatest(t *testing.T) {
	ch := make(chan paintState, 1)
	queuePaint(ch, paintState{width: 1})
	queuePaint(ch, paintState{width: 2})
	queuePaint(ch, paintState{width: 3})
	if got := (<-ch).width; got != 3 {
		t.Fatalf("expected latest state, got width %d", got)
	}
	select {
	case st := <-ch:
		t.Fatalf("unexpected extra state %+v", st)
	default:
	}
}

func TestQueuePaintWithBusyConsumer(t *testing.T) {
	ch := make(chan paintState, 1)
	consumed := make(chan int, 1)
	go func() {
		last := 0
		for st := range ch {
			last = st.width
		}
		consumed <- last
	}()

	done := make(chan struct{})
	go func() {
		for i := 1; i <= 10000; i++ {
			queuePaint(ch, paintState{width: i})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("queuePaint blocked while the consumer was draining")
	}
	close(ch)
	select {
	case last := <-consumed:
		if last != 10000 {
			t.Fatalf("consumer missed the final state, last width %d", last)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not finish")
	}
}
