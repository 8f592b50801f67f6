// Package vizr renders aggregated report datasets as interactive
// multi-series SVG charts: series derivation, heterogeneous scales,
// per-chart-type render strategies, and pointer interactions resolving
// back to raw rows for drill-down.
package vizr

import (
	"os"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	logger   *bolt.Logger
	logOnce  sync.Once
	logLevel = bolt.WARN
)

// SetLogLevel adjusts diagnostic verbosity. Shape-precondition failures
// log at warn, render-cycle tracing at debug.
func SetLogLevel(level string) {
	l := log()
	switch level {
	case "trace":
		l.SetLevel(bolt.TRACE)
	case "debug":
		l.SetLevel(bolt.DEBUG)
	case "info":
		l.SetLevel(bolt.INFO)
	case "error":
		l.SetLevel(bolt.ERROR)
	default:
		l.SetLevel(bolt.WARN)
	}
}

func log() *bolt.Logger {
	logOnce.Do(func() {
		handler := bolt.NewConsoleHandler(os.Stderr)
		logger = bolt.New(handler).SetLevel(logLevel)
	})
	return logger
}
