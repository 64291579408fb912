package reachability

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/darkmastermindz/emojicode/pkg/typesys"
)

// Entry is one function queued for code generation, keyed by a stable
// uuid.UUID so a driver embedding this compiler can correlate "function
// enqueued" log events with the queue's contents without re-deriving
// identity from the *typesys.Function pointer.
type Entry struct {
	ID uuid.UUID
	Fn *typesys.Function
}

// Queue is a FIFO of functions marked reachable, awaiting code generation.
// It is NOT safe for concurrent Push/Pop from multiple goroutines: the
// design assumes serial emission, so VTI allocation and used-flag
// propagation need no locks. A driver wanting concurrent emission must add
// its own synchronization outside this core.
type Queue struct {
	entries []Entry
	log     *zap.Logger
}

// NewQueue creates an empty Queue. log may be nil (defaults to a no-op
// logger); low-volume structural events (push, drain) are logged through
// it, never diagnostics.
func NewQueue(log *zap.Logger) *Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return &Queue{log: log}
}

// Push appends f to the queue under a freshly minted entry id and returns it.
func (q *Queue) Push(f *typesys.Function) uuid.UUID {
	id := uuid.New()
	q.entries = append(q.entries, Entry{ID: id, Fn: f})
	q.log.Debug("function enqueued", zap.String("id", id.String()), zap.String("name", f.Name))
	return id
}

// Pop removes and returns the oldest queued entry, or ok=false if empty.
func (q *Queue) Pop() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

// Len reports how many entries remain queued.
func (q *Queue) Len() int { return len(q.entries) }

// Drain calls visit for every queued entry, in FIFO order, until the queue
// is empty. visit may itself Push newly-referenced functions (code
// generation referencing a function for the first time); Drain keeps
// consuming until no entries remain, matching "code generation consumes
// the queue and may itself enqueue newly-referenced functions".
func (q *Queue) Drain(visit func(Entry)) {
	for {
		e, ok := q.Pop()
		if !ok {
			q.log.Debug("compilation queue drained")
			return
		}
		visit(e)
	}
}

// MarkUsedAndEnqueue implements the reachability algorithm's four steps:
// mark f used (which itself notifies f's VTI provider and transitively
// marks every direct overrider used, via typesys.Function.MarkUsed), then,
// in enqueue-mode, push every function newly marked used (f and any
// overriders that were not already used) onto q for code generation.
func MarkUsedAndEnqueue(f *typesys.Function, q *Queue, enqueue bool) {
	if f.Used() {
		return
	}
	newlyUsed := collectNewlyUsed(f)
	f.MarkUsed()
	if enqueue && q != nil {
		for _, g := range newlyUsed {
			q.Push(g)
		}
	}
}

// collectNewlyUsed returns f and every transitive overrider that is not
// yet used, in the same pre-order MarkUsed will visit them in, computed
// before mutating anything so the caller knows exactly what to enqueue.
func collectNewlyUsed(f *typesys.Function) []*typesys.Function {
	if f.Used() {
		return nil
	}
	out := []*typesys.Function{f}
	for _, g := range f.Overriders {
		out = append(out, collectNewlyUsed(g)...)
	}
	return out
}
