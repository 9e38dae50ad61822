package util

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func TestAtomicBoolCompareAndSwap(t *testing.T) {
	b := NewAtomicBool(false)
	if !b.CompareAndSwap(false, true) {
		t.Fatalf("CompareAndSwap(false, true) failed on a false flag")
	}
	if b.CompareAndSwap(false, true) {
		t.Fatalf("CompareAndSwap(false, true) succeeded twice")
	}
	if !b.Get() {
		t.Fatalf("flag: got false, expected true")
	}
	b.Set(false)
	if b.Get() {
		t.Fatalf("flag: got true after Set(false)")
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	SetTraceOutput(log.New(&buf, "", 0))
	defer SetTraceOutput(log.New(os.Stderr, "simple: ", log.LstdFlags|log.Lmicroseconds))

	Trace("hidden %d", 1)
	EnableTrace()
	Trace("shown %d", 2)
	DisableTrace()
	Trace("hidden %d", 3)

	if got := buf.String(); got != "shown 2\n" {
		t.Fatalf("trace output: got %q, expected %q", got, "shown 2\n")
	}
}
