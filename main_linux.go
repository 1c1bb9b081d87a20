//go:build linux

// main_linux.go - CPU affinity via sched_setaffinity(2)

package main

import "golang.org/x/sys/unix"

// pinCPU restricts the calling OS thread to cpu. The caller must have
// locked its goroutine to the thread.
func pinCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
