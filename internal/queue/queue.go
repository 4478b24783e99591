// Package queue implements the scheduler's process queue: a single
// FIFO of (warrior, thread, offset) entries shared by every warrior in
// the battle, plus the bookkeeping needed to detect a warrior's death
// and to allocate fresh thread ids on SPL.
package queue

// Entry is one scheduled task: a warrior's thread waiting to execute
// at a given core offset.
type Entry struct {
	WarriorID int
	ThreadID  int
	Offset    int
}

// Queue is the global FIFO across all warriors.
type Queue struct {
	entries       []Entry
	threadCounts  []int // live entries currently enqueued, indexed by warrior id
	nextThreadID  []int // monotonic counter for fresh thread ids, indexed by warrior id
	maxProcesses  int
}

// New builds an empty queue sized for numWarriors, each capped at
// maxProcesses concurrently live threads.
func New(numWarriors, maxProcesses int) *Queue {
	return &Queue{
		threadCounts: make([]int, numWarriors),
		nextThreadID: make([]int, numWarriors),
		maxProcesses: maxProcesses,
	}
}

// Len returns the number of live entries in the queue.
func (q *Queue) Len() int { return len(q.entries) }

// ThreadCount returns the number of live entries currently enqueued
// for warrior w.
func (q *Queue) ThreadCount(w int) int { return q.threadCounts[w] }

// Seed enqueues warrior w's initial thread (thread id 0) at offset.
// Used once per warrior by the loader.
func (q *Queue) Seed(w, offset int) {
	q.entries = append(q.entries, Entry{WarriorID: w, ThreadID: 0, Offset: offset})
	q.threadCounts[w] = 1
	q.nextThreadID[w] = 1
}

// Pop removes and returns the head entry. ok is false if the queue is
// empty.
func (q *Queue) Pop() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

// Requeue re-enqueues a thread that survived its step, keeping its
// thread id.
func (q *Queue) Requeue(e Entry) {
	q.entries = append(q.entries, e)
}

// Drop marks a thread as terminated (DAT/divide-by-zero), decrementing
// its warrior's live thread count. Returns true if that warrior has no
// live threads left.
func (q *Queue) Drop(w int) (dead bool) {
	q.threadCounts[w]--
	return q.threadCounts[w] == 0
}

// Split enqueues a continuation thread under the current thread id and
// a new thread under a freshly allocated id, in that order (spec
// §4.4/§4.5: SPL enqueues (PC+1, same thread), then (PC+jump, new
// thread)). If the warrior is already at its max_processes cap, the
// new-thread enqueue is silently dropped; the continuation always
// succeeds since it does not grow the thread count.
func (q *Queue) Split(w, threadID, continuationOffset, newOffset int) {
	q.entries = append(q.entries, Entry{WarriorID: w, ThreadID: threadID, Offset: continuationOffset})

	if q.threadCounts[w] >= q.maxProcesses {
		return
	}
	newID := q.nextThreadID[w]
	q.nextThreadID[w] = newID + 1
	q.threadCounts[w]++
	q.entries = append(q.entries, Entry{WarriorID: w, ThreadID: newID, Offset: newOffset})
}
