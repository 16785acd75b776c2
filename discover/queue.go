// Package discover: BFS queue with deduplication.
// Keeps a seen set so an outline is visited once however many pages or
// includes refer to it.
package discover

// Queue is a FIFO of URLs that ignores repeats.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues url unless it was added before. It reports whether url
// was new.
func (q *Queue) Add(url string) bool {
	if q.seen[url] {
		return false
	}
	q.seen[url] = true
	q.items = append(q.items, url)
	return true
}

// HasNext returns true if there are unprocessed URLs.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed URL and advances the pointer.
func (q *Queue) Next() string {
	url := q.items[q.idx]
	q.idx++
	return url
}

// Len returns the number of unique URLs seen.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns every URL added, in insertion order.
func (q *Queue) All() []string {
	return append([]string(nil), q.items...)
}
