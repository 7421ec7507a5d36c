package concurrent

import "sync"

// Semaphore is a counting permit pool: Acquire blocks until a permit is
// available, TryAcquire never blocks, and Release returns a permit,
// clamped so permits never exceeds the configured maximum.
//
// The zero value is not usable; construct with NewSemaphore.
type Semaphore struct {
	mu         sync.Mutex
	cond       *sync.Cond
	permits    int
	maxPermits int
	logger     Logger
}

// NewSemaphore constructs a semaphore with n permits, both as the starting
// count and as the ceiling future Release calls are clamped to. A
// negative n is treated as zero.
func NewSemaphore(n int, opts ...Option) *Semaphore {
	if n < 0 {
		n = 0
	}
	cfg := resolveOptions(opts)
	s := &Semaphore{permits: n, maxPermits: n, logger: cfg.logger}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Guard holds exactly one outstanding permit of the Semaphore that issued
// it. Release returns the permit; it is idempotent, so calling it more
// than once (a programmer error this library chooses to tolerate, since Go
// has no deterministic destructor to enforce "exactly once" statically)
// only returns the permit the first time.
type Guard struct {
	sem      *Semaphore
	released bool
}

// Release returns this guard's permit to its semaphore. Calling Release
// more than once has no additional effect.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.sem.release()
}

// Acquire blocks until a permit is available, then returns a Guard holding
// it.
func (s *Semaphore) Acquire() *Guard {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.permits == 0 {
		logWait(s.logger, "semaphore: acquire blocked, no permits available")
		s.cond.Wait()
	}
	s.permits--
	return &Guard{sem: s}
}

// TryAcquire attempts to take a permit without blocking. If the state
// mutex is already held by another goroutine, or no permit is available,
// it returns (nil, false) rather than waiting.
func (s *Semaphore) TryAcquire() (*Guard, bool) {
	if !s.mu.TryLock() {
		return nil, false
	}
	defer s.mu.Unlock()
	if s.permits == 0 {
		return nil, false
	}
	s.permits--
	return &Guard{sem: s}, true
}

// Release returns one permit directly to the semaphore, without going
// through a Guard. Intended primarily for Guard.Release, but also usable
// directly, matching the source this library is grounded on, which exposes
// the same method both ways.
func (s *Semaphore) Release() {
	s.release()
}

func (s *Semaphore) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.permits < s.maxPermits {
		s.permits++
		logWait(s.logger, "semaphore: permit released")
		s.cond.Broadcast()
	}
}

// WithPermit acquires a permit, runs fn, and releases the permit on every
// exit path from fn, including a panic. It is the scope-function
// alternative to defer guard.Release(), for callers who want the release
// guaranteed without writing the defer themselves.
func (s *Semaphore) WithPermit(fn func() error) error {
	guard := s.Acquire()
	defer guard.Release()
	return fn()
}
