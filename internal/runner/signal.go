// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"os"
	"os/signal"
	"sync"

	"ttr/internal/logger"

	"golang.org/x/sys/unix"
)

// Forwarder relays interrupts received by the launcher to the running child.
// While it is installed the launcher itself is not terminated by Ctrl-C.
type Forwarder struct {
	pids *PidCell
	kill func(pid int, sig unix.Signal) error

	sigs chan os.Signal
	done chan struct{}
	once sync.Once
}

// NewForwarder returns a forwarder targeting the pid held in pids.
func NewForwarder(pids *PidCell) *Forwarder {
	return newForwarder(pids, unix.Kill)
}

func newForwarder(pids *PidCell, kill func(int, unix.Signal) error) *Forwarder {
	return &Forwarder{
		pids: pids,
		kill: kill,
		sigs: make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
}

// Start subscribes to SIGINT and begins relaying.
func (f *Forwarder) Start() {
	signal.Notify(f.sigs, os.Interrupt)
	go f.loop()
}

// Stop unsubscribes and ends the relay goroutine. Safe to call twice.
func (f *Forwarder) Stop() {
	f.once.Do(func() {
		signal.Stop(f.sigs)
		close(f.done)
	})
}

func (f *Forwarder) loop() {
	for {
		select {
		case <-f.done:
			return
		case <-f.sigs:
			f.forward()
		}
	}
}

// forward sends SIGINT to the current child, if any. Failures are logged
// only; the child may already have exited.
func (f *Forwarder) forward() bool {
	pid := f.pids.Load()
	if pid <= 0 {
		logger.Debug("Interrupt received with no running task")
		return false
	}
	if err := f.kill(pid, unix.SIGINT); err != nil {
		logger.Warn("Failed to forward interrupt", "pid", pid, "error", err)
		return false
	}
	logger.Info("Forwarded interrupt", "pid", pid)
	return true
}
