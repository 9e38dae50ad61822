package event

// Queue buffers events in arrival order. It has no capacity limit: a consumer
// that never drains it lets it grow without bound.
type Queue struct {
	events []Event
	head   int
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest event. ok is false if q is empty.
func (q *Queue) Pop() (e Event, ok bool) {
	if q.Empty() {
		return nil, false
	}
	e = q.events[q.head]
	q.events[q.head] = nil
	q.head++
	if q.head == len(q.events) {
		// Reuse the backing array once everything is consumed.
		q.events = q.events[:0]
		q.head = 0
	}
	return e, true
}

func (q *Queue) Len() int {
	return len(q.events) - q.head
}

func (q *Queue) Empty() bool {
	return q.Len() == 0
}
