//go:build !linux

// main_other.go - CPU affinity stub for platforms without sched_setaffinity(2)

package main

import (
	"errors"
	"runtime"
)

func pinCPU(cpu int) error {
	return errors.New("cpu pinning unsupported on " + runtime.GOOS)
}
