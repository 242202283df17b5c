// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// AutoLock locks an unlocked session once it has been idle for timeout.
type AutoLock struct {
	session  Session
	timeout  time.Duration
	interval time.Duration
	logger   *logger.Logger
}

// NewAutoLock returns an auto-lock worker polling every interval. A
// non-positive interval defaults to a tenth of timeout, at least one second.
func NewAutoLock(session Session, timeout, interval time.Duration, logger *logger.Logger) *AutoLock {
	if interval <= 0 {
		interval = max(timeout/10, time.Second)
	}
	return &AutoLock{
		session:  session,
		timeout:  timeout,
		interval: interval,
		logger:   logger,
	}
}

func (a *AutoLock) Run(ctx context.Context) {
	t := time.NewTicker(a.interval)
	defer t.Stop()

	a.logger.Debug().Str("func", "AutoLock.Run").Dur("timeout", a.timeout).Msg("auto-lock started")

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.Check()
		}
	}
}

// Check locks the session if it is unlocked and idle for at least timeout.
// It reports whether the session was locked.
func (a *AutoLock) Check() bool {
	if a.timeout <= 0 {
		return false
	}

	locked := a.session.LockIfIdle(a.timeout)
	if locked {
		a.logger.Debug().Str("func", "AutoLock.Check").Dur("timeout", a.timeout).Msg("idle session locked")
	}
	return locked
}
