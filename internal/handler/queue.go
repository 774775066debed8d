package handler

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// UserQueue runs each user's updates one at a time, in the order they were
// enqueued. Every user with pending updates gets one worker goroutine, which
// exits once the user's queue is drained. Users never wait on each other.
type UserQueue struct {
	onError func(error, tele.Context)

	mu      sync.Mutex
	workers map[int64]*queueWorker
	wg      sync.WaitGroup
}

type queueWorker struct {
	pending []func()
}

// NewUserQueue creates a queue; onError receives errors returned by handlers
func NewUserQueue(onError func(error, tele.Context)) *UserQueue {
	return &UserQueue{
		onError: onError,
		workers: make(map[int64]*queueWorker),
	}
}

// Middleware enqueues the rest of the chain on the sender's queue.
// It must be the outermost middleware of a bot running with Synchronous set,
// so updates are enqueued in poller order.
func (q *UserQueue) Middleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return next(c)
		}

		q.Do(sender.ID, func() {
			if err := next(c); err != nil && q.onError != nil {
				q.onError(err, c)
			}
		})
		return nil
	}
}

// Do schedules job after all jobs already queued for userID
func (q *UserQueue) Do(userID int64, job func()) {
	q.mu.Lock()
	if w, ok := q.workers[userID]; ok {
		w.pending = append(w.pending, job)
		q.mu.Unlock()
		return
	}

	w := &queueWorker{}
	q.workers[userID] = w
	q.wg.Add(1)
	q.mu.Unlock()

	go q.run(userID, w, job)
}

func (q *UserQueue) run(userID int64, w *queueWorker, job func()) {
	defer q.wg.Done()

	for {
		job()

		q.mu.Lock()
		if len(w.pending) == 0 {
			delete(q.workers, userID)
			q.mu.Unlock()
			return
		}
		job = w.pending[0]
		w.pending[0] = nil
		w.pending = w.pending[1:]
		q.mu.Unlock()
	}
}

// Wait blocks until every queued job has finished
func (q *UserQueue) Wait() {
	q.wg.Wait()
}

// active returns the number of users with running workers
func (q *UserQueue) active() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.workers)
}
