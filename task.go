package tessel

// Pool is the execution resource tessellation tasks are submitted to.
// Submit must not block indefinitely and must eventually run fn;
// submitted work always runs to completion, there is no cancellation.
//
// The cache references a pool, it never owns one handed to it: the
// surrounding context decides the pool's lifetime.
type Pool interface {
	Submit(fn func())
}

// Task is a unit of asynchronous work producing a value of type T.
//
// A task is submitted exactly once and resolved exactly once by a pool
// worker. Result blocks until resolution. Completion is published by
// closing a channel, so delivery never depends on further progress
// from the goroutine blocked in Result: a caller that also services
// pool work cannot deadlock itself by waiting.
type Task[T any] struct {
	fn     func() T
	result T
	done   chan struct{}
}

// NewTask creates a task around fn. The function must capture
// snapshots of its inputs: the caller's transient state may be gone by
// the time a worker runs it.
func NewTask[T any](fn func() T) *Task[T] {
	return &Task[T]{
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Run executes the task and publishes its result. It is the body
// handed to Pool.Submit and must be called exactly once.
func (t *Task[T]) Run() {
	t.result = t.fn()
	t.fn = nil
	close(t.done)
}

// Result blocks until the task has run, then returns its result.
// Subsequent calls return immediately.
func (t *Task[T]) Result() T {
	<-t.done
	return t.result
}

// Done reports whether the task has resolved, without blocking.
func (t *Task[T]) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
