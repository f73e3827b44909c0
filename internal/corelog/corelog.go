// Package corelog provides the package-level structured logger shared by
// every component of the static analysis core. The core has no main and no
// CLI flags of its own, so unlike theRebelliousNerd-codenerd's zap bring-up
// there is nothing to parse a --verbose flag from; an embedding host swaps
// the logger in via SetLogger. Until then every call is a silent no-op.
package corelog

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the no-op
// logger. Safe to call from an embedding host before issuing any entry
// point calls; the core itself never calls this.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// L returns the current logger. Components should call this at use time
// rather than capturing a reference, so a host's SetLogger takes effect
// immediately.
func L() *zap.Logger {
	return logger
}
