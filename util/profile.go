package util

import (
	"os"
	"runtime/pprof"
)

// StartCPUProfileFromEnv starts a CPU profile written to the file named by
// the environment variable env, if it is set. The returned function stops the
// profile and is never nil.
func StartCPUProfileFromEnv(env string) (func(), error) {
	filename := os.Getenv(env)
	if filename == "" {
		return func() {}, nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}

// EnableTraceFromEnv turns tracing on when env is set to "1".
func EnableTraceFromEnv(env string) {
	if os.Getenv(env) == "1" {
		EnableTrace()
	}
}
