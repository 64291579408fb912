package reachability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkmastermindz/emojicode/pkg/typesys"
)

func newFn(name string) *typesys.Function {
	return typesys.NewFunction(name, typesys.SourcePosition{}, typesys.Public, nil, typesys.Something(false))
}

func TestVTIAssignmentIsLazyAndShared(t *testing.T) {
	p := NewProvider()
	base := newFn("speak")
	base.SetVTIProvider(p)
	override := newFn("speak")
	base.AddOverrider(override)

	assert.False(t, base.Assigned())
	assert.Panics(t, func() { base.VTI() }, "querying an unassigned VTI is a programmer error")

	base.AssignVTI()

	require.True(t, base.Assigned())
	require.True(t, override.Assigned())
	assert.Equal(t, base.VTI(), override.VTI(), "every implementation of the same virtual method shares the slot")
}

func TestAssignVTIisNoOpOnceAssigned(t *testing.T) {
	p := NewProvider()
	f := newFn("speak")
	f.SetVTIProvider(p)
	f.AssignVTI()

	firstVTI := f.VTI()
	f.AssignVTI()
	assert.Equal(t, firstVTI, f.VTI())
}

func TestReassignProviderPanics(t *testing.T) {
	f := newFn("speak")
	f.SetVTIProvider(NewProvider())
	assert.Panics(t, func() { f.SetVTIProvider(NewProvider()) })
}

func TestMarkUsedPropagatesAndEnqueues(t *testing.T) {
	p := NewProvider()
	base := newFn("speak")
	base.SetVTIProvider(p)
	mid := newFn("speak")
	base.AddOverrider(mid)
	leaf := newFn("speak")
	mid.AddOverrider(leaf)

	q := NewQueue(nil)
	MarkUsedAndEnqueue(base, q, true)

	assert.True(t, base.Used())
	assert.True(t, mid.Used())
	assert.True(t, leaf.Used())
	assert.Equal(t, 1, p.UsedCount(), "provider is only notified once, at the family root")
	assert.Equal(t, 3, q.Len(), "base and every transitive overrider are enqueued")
}

func TestMarkUsedAndEnqueueIsIdempotent(t *testing.T) {
	f := newFn("speak")
	q := NewQueue(nil)
	MarkUsedAndEnqueue(f, q, true)
	MarkUsedAndEnqueue(f, q, true)
	assert.Equal(t, 1, q.Len())
}

func TestMarkUsedWithoutEnqueueModeDoesNotQueue(t *testing.T) {
	f := newFn("speak")
	q := NewQueue(nil)
	MarkUsedAndEnqueue(f, q, false)
	assert.True(t, f.Used())
	assert.Equal(t, 0, q.Len())
}

func TestQueueDrainConsumesInFIFOOrderAndAllowsRequeue(t *testing.T) {
	q := NewQueue(nil)
	a, b := newFn("a"), newFn("b")
	q.Push(a)
	q.Push(b)

	var seen []string
	requeueDone := false
	q.Drain(func(e Entry) {
		seen = append(seen, e.Fn.Name)
		if !requeueDone && e.Fn == b {
			requeueDone = true
			q.Push(newFn("c"))
		}
	})

	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, 0, q.Len())
}

func TestLinkingTableExportIsStableAndOncePerFunction(t *testing.T) {
	lt := NewLinkingTable()
	f := newFn("speak")

	idx1 := lt.Export(f)
	idx2 := lt.Export(f)

	assert.Equal(t, idx1, idx2)
	assert.Equal(t, 1, lt.Len())
	assert.Same(t, f, lt.At(idx1))
}
