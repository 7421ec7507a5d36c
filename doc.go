// Package concurrent implements a small set of thread-safe concurrency
// primitives and blocking collections: a bounded ring-buffer queue, an
// unbounded two-lock queue, a one-shot count-down latch, and a counting
// semaphore with a scoped release guard.
//
// Each type is a leaf: none of them depend on each other, and each is
// usable on its own. They share only a common idiom, a state mutex plus
// one or two [sync.Cond] instances, with [sync/atomic] used for counters
// that are cheap to read outside the lock.
//
// # Quick Start
//
//	q := concurrent.NewArrayBlockingQueueWithCapacity[int](64)
//	go func() { q.Enqueue(42) }()
//	v := q.Dequeue() // blocks until a value is available
//
//	uq := concurrent.NewLinkedBlockingQueue[string]()
//	uq.Offer("hello") // never blocks, never fails
//
//	latch := concurrent.NewCountDownLatch(3)
//	go func() { latch.Await() /* blocks until count reaches zero */ }()
//	latch.CountDown()
//	latch.CountDown()
//	latch.CountDown()
//
//	sem := concurrent.NewSemaphore(4)
//	guard := sem.Acquire()
//	defer guard.Release()
//
// # Thread Safety
//
// All operations on all four types are safe for concurrent use by any
// number of goroutines. There is no cooperative scheduling assumption:
// the library is safe under preemption at any instruction, because all
// suspension happens inside sync.Cond.Wait, which atomically releases and
// reacquires its paired mutex.
//
// # Non-goals
//
// This package does not implement lock-free algorithms, priority
// ordering, per-element timeouts or cancellation, traversal iterators,
// persistence, or cross-process sharing. There is no context.Context
// parameter anywhere in the core API; blocking operations block until
// their condition holds, with no escape hatch.
package concurrent
