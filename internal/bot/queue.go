package bot

import "sync"

// chatQueue runs tasks for the same chat strictly in order while a
// global semaphore bounds how many chats are processed at once. The
// caller of Submit never blocks, so the update-reception path is never
// stalled by a slow extraction or generation call.
type chatQueue struct {
	mu      sync.Mutex
	pending map[int64][]func()
	active  map[int64]bool
	sem     chan struct{}
}

func newChatQueue(workerLimit int) *chatQueue {
	return &chatQueue{
		pending: make(map[int64][]func()),
		active:  make(map[int64]bool),
		sem:     make(chan struct{}, workerLimit),
	}
}

// Submit enqueues a task for the chat and starts a drainer for it if
// one is not already running
func (q *chatQueue) Submit(chatID int64, task func()) {
	q.mu.Lock()
	q.pending[chatID] = append(q.pending[chatID], task)
	if q.active[chatID] {
		q.mu.Unlock()
		return
	}
	q.active[chatID] = true
	q.mu.Unlock()

	go q.drain(chatID)
}

// idle reports whether no chat is currently being drained
func (q *chatQueue) idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.active) == 0
}

func (q *chatQueue) drain(chatID int64) {
	for {
		q.mu.Lock()
		tasks := q.pending[chatID]
		if len(tasks) == 0 {
			q.active[chatID] = false
			delete(q.pending, chatID)
			q.mu.Unlock()
			return
		}
		task := tasks[0]
		q.pending[chatID] = tasks[1:]
		q.mu.Unlock()

		q.sem <- struct{}{}
		task()
		<-q.sem
	}
}
