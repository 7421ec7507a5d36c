package concurrent

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the diagnostic logging hook every component in this package
// accepts via WithLogger. It is github.com/joeycumines/logiface's Logger,
// parameterized over stumpy's Event type — the same pairing shown in
// logiface's own stumpy backend example
// (stumpy.L.New(stumpy.L.WithStumpy(...), stumpy.L.WithWriter(...))).
//
// A nil Logger (the default, when WithLogger is never passed) disables
// logging entirely; every call site in this package checks for nil before
// doing any work, so the cost of not configuring a logger is one branch.
type Logger = *logiface.Logger[*stumpy.Event]

// NewStderrLogger builds a Logger that writes newline-delimited JSON to
// os.Stderr via stumpy, at the given minimum level. It's a convenience for
// callers who want diagnostic logging without assembling the logiface
// options themselves; any logiface.Logger[*stumpy.Event] built another way
// works equally well with WithLogger.
func NewStderrLogger(level logiface.Level) Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(),
		logiface.WithLevel[*stumpy.Event](level),
	)
}

// logWait emits a debug-level diagnostic with a fixed message describing a
// blocking transition. It is a no-op when logger is nil, which is the
// default for every component in this package.
func logWait(logger Logger, msg string) {
	if logger == nil {
		return
	}
	logger.Debug().Log(msg)
}
