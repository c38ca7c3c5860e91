package tessel

import (
	"sync"

	"github.com/gogpu/tessel/geom"
)

// Buffer ties a tessellation task to a cache slot.
//
// A buffer starts Pending, owning a live task. The first call to Size
// or Mesh blocks until the task resolves, takes ownership of the mesh
// and drops the task handle; every later call is a plain read.
// Buffers are safe for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	task     *Task[*geom.Mesh]
	mesh     *geom.Mesh
	released bool
}

// newBuffer wraps a submitted task in a cache entry.
func newBuffer(task *Task[*geom.Mesh]) *Buffer {
	return &Buffer{task: task}
}

// Size returns the mesh's size in bytes, blocking until the
// tessellation resolves on first call.
func (b *Buffer) Size() int {
	return b.materialize().Size()
}

// Mesh returns the tessellated mesh, blocking until the tessellation
// resolves on first call.
func (b *Buffer) Mesh() *geom.Mesh {
	return b.materialize()
}

// Pending reports whether the buffer has not materialized its mesh yet.
func (b *Buffer) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mesh == nil
}

// materialize performs the Pending -> Ready transition. The tessellator
// contract guarantees a mesh for valid input, so a nil result is an
// unrecoverable internal error. Waiting while holding the buffer lock
// is safe: workers resolve tasks without touching buffers.
func (b *Buffer) materialize() *geom.Mesh {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mesh == nil {
		mesh := b.task.Result()
		if mesh == nil {
			Logger().Error("tessellation task resolved without a mesh")
			panic("tessel: tessellation task resolved without a mesh")
		}
		b.mesh = mesh
		b.task = nil
	}
	return b.mesh
}

// release is invoked when the buffer leaves the cache. It runs at most
// once. A still-pending task cannot be cancelled; its result is
// awaited in the background and discarded, never pre-empted.
func (b *Buffer) release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return
	}
	b.released = true
	if b.task != nil && !b.task.Done() {
		go func(t *Task[*geom.Mesh]) {
			t.Result()
		}(b.task)
	}
}
