package flatlayer

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Observer provides hooks for monitoring SDK operations. Implement this
// interface to track request rates and latencies or to debug issues. The SDK
// itself never logs; all visibility goes through the observer.
//
// Observer methods should be fast and non-blocking.
//
// Example implementation:
//
//	type countingObserver struct{ requests atomic.Int64 }
//
//	func (o *countingObserver) OnRequestStart(method, path string) {
//	    o.requests.Add(1)
//	}
//
//	func (o *countingObserver) OnRequestEnd(method, path string, d time.Duration, err error) {}
type Observer interface {
	// OnRequestStart is called when an HTTP request starts.
	OnRequestStart(method, path string)

	// OnRequestEnd is called when an HTTP request completes.
	// err is nil on success.
	OnRequestEnd(method, path string, duration time.Duration, err error)
}

// NoopObserver is an Observer that does nothing. It is the default when no
// observer is configured.
type NoopObserver struct{}

// OnRequestStart does nothing.
func (o *NoopObserver) OnRequestStart(method, path string) {}

// OnRequestEnd does nothing.
func (o *NoopObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {}

// LogObserver is an Observer that writes structured request logs through
// logrus. Successful requests log at debug level, failures at warn.
//
// Example:
//
//	logger := logrus.New()
//	logger.SetLevel(logrus.DebugLevel)
//	config := flatlayer.DefaultConfig().
//	    WithObserver(flatlayer.NewLogObserver(logger))
type LogObserver struct {
	logger logrus.FieldLogger
}

// NewLogObserver creates a LogObserver writing to the given logger.
// A nil logger uses the logrus standard logger.
func NewLogObserver(logger logrus.FieldLogger) *LogObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogObserver{logger: logger}
}

// OnRequestStart logs the start of a request at debug level.
func (o *LogObserver) OnRequestStart(method, path string) {
	o.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("flatlayer request started")
}

// OnRequestEnd logs the outcome of a request.
func (o *LogObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"method":      method,
		"path":        path,
		"duration_ms": duration.Milliseconds(),
	}
	if err != nil {
		o.logger.WithFields(fields).WithError(err).Warn("flatlayer request failed")
		return
	}
	o.logger.WithFields(fields).Debug("flatlayer request completed")
}
