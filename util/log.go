package util

import (
	"log"
	"os"
)

var (
	flagEnableTrace bool = false
	traceLogger          = log.New(os.Stderr, "simple: ", log.LstdFlags|log.Lmicroseconds)
)

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

// SetTraceOutput redirects trace lines, mostly for tests.
func SetTraceOutput(l *log.Logger) {
	traceLogger = l
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		traceLogger.Printf(format, v...)
	}
}
