// Package middleware holds cross-cutting handler helpers: panic recovery
// and incoming event logging.
package middleware

import (
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// RecoverFromPanic is deferred at the top of every handler so one bad
// interaction never takes the whole gateway connection down.
func RecoverFromPanic() {
	if r := recover(); r != nil {
		log.WithFields(log.Fields{
			"component": "panic_recovery",
			"panic":     fmt.Sprintf("%v", r),
			"stack":     string(debug.Stack()),
		}).Error("panic in handler, recovered")
	}
}
