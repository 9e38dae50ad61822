package util

import "sync/atomic"

type AtomicBool struct {
	flag uint32
}

func NewAtomicBool(initVal bool) *AtomicBool {
	if initVal {
		return &AtomicBool{flag: 1}
	}
	return &AtomicBool{flag: 0}
}

func (b *AtomicBool) Get() bool {
	return atomic.LoadUint32(&b.flag) != 0
}

func (b *AtomicBool) Set(newVal bool) {
	if newVal {
		atomic.StoreUint32(&b.flag, 1)
	} else {
		atomic.StoreUint32(&b.flag, 0)
	}
}

// CompareAndSwap sets the flag to newVal only if it currently holds oldVal.
func (b *AtomicBool) CompareAndSwap(oldVal, newVal bool) bool {
	return atomic.CompareAndSwapUint32(&b.flag, boolToU32(oldVal), boolToU32(newVal))
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
