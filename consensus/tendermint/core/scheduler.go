package core

import (
	"container/heap"
	"sync"
	"time"
)

// scheduledTask is one entry in the scheduler's min-heap, ordered by
// absolute fire time. seq breaks ties in insertion order so that delivery
// order for same-duration tasks is stable within the lifetime of one
// height, as §4.5 requires.
type scheduledTask struct {
	task   Task
	fireAt time.Time
	seq    int
}

type taskHeap []*scheduledTask

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt.Equal(h[j].fireAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].fireAt.Before(h[j].fireAt)
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(*scheduledTask)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// TaskScheduler holds the set of pending timed tasks emitted by the
// single-height machine, and yields each one once its delay elapses
// (§4.5). This realizes the source's "each task is an independent future
// that sleeps then yields itself" as the min-heap formulation the spec's
// design notes call out as an equivalent encoding — grounded in the
// teacher's TxSenderCacher, which runs a small pool of goroutines
// draining a work channel; here a single goroutine drains a time-ordered
// heap instead of a plain queue, since delivery must be time-ordered
// rather than FIFO.
type TaskScheduler struct {
	mu      sync.Mutex
	pending taskHeap
	seq     int

	ready     chan Task
	reset     chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewTaskScheduler starts a scheduler with no pending tasks. Call Close
// when the owning height is done with it.
func NewTaskScheduler() *TaskScheduler {
	s := &TaskScheduler{
		ready: make(chan Task),
		reset: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Push registers task with a delay measured from now.
func (s *TaskScheduler) Push(task Task) {
	s.mu.Lock()
	heap.Push(&s.pending, &scheduledTask{task: task, fireAt: time.Now().Add(task.Delay), seq: s.seq})
	s.seq++
	s.mu.Unlock()

	select {
	case s.reset <- struct{}{}:
	default:
	}
}

// NextReady is the channel a driver selects on alongside incoming
// messages; it never sends anything while no task is pending, which is
// exactly the "suspend forever if empty" contract of §4.5.
func (s *TaskScheduler) NextReady() <-chan Task {
	return s.ready
}

// Close abandons every pending task. Once closed, NextReady never yields
// again. This is what happens to a height's scheduler on sync
// preemption: the tasks are simply dropped (§5).
func (s *TaskScheduler) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *TaskScheduler) run() {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		s.mu.Lock()
		hasNext := len(s.pending) > 0
		var delay time.Duration
		if hasNext {
			delay = time.Until(s.pending[0].fireAt)
			if delay < 0 {
				delay = 0
			}
		}
		s.mu.Unlock()

		if hasNext {
			timer.Reset(delay)
		}

		select {
		case <-s.done:
			return

		case <-s.reset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			continue

		case <-timer.C:
			s.mu.Lock()
			var next *scheduledTask
			if len(s.pending) > 0 {
				next = heap.Pop(&s.pending).(*scheduledTask)
			}
			s.mu.Unlock()
			if next == nil {
				continue
			}
			select {
			case s.ready <- next.task:
			case <-s.done:
				return
			}
		}
	}
}
