// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package vault

import (
	"sync"
	"time"
)

// LockoutPolicy bounds repeated PIN failures. Once Threshold failures land
// inside Window, the gate locks for Base, doubling on every consecutive
// lockout until a successful unlock resets the streak.
type LockoutPolicy struct {
	Threshold int
	Window    time.Duration
	Base      time.Duration
}

// DefaultLockoutPolicy is used when the configuration leaves the lockout
// parameters unset.
var DefaultLockoutPolicy = LockoutPolicy{
	Threshold: 5,
	Window:    time.Minute,
	Base:      30 * time.Second,
}

// LockoutTracker keeps a sliding window of PIN failure timestamps and the
// currently active lockout deadline. Safe for concurrent use.
type LockoutTracker struct {
	mu          sync.Mutex
	policy      LockoutPolicy
	failures    []time.Time
	lockedUntil time.Time
	streak      int
}

// NewLockoutTracker builds a tracker for the given policy, falling back to
// DefaultLockoutPolicy for any zero field.
func NewLockoutTracker(policy LockoutPolicy) *LockoutTracker {
	if policy.Threshold <= 0 {
		policy.Threshold = DefaultLockoutPolicy.Threshold
	}
	if policy.Window <= 0 {
		policy.Window = DefaultLockoutPolicy.Window
	}
	if policy.Base <= 0 {
		policy.Base = DefaultLockoutPolicy.Base
	}

	return &LockoutTracker{policy: policy}
}

// RecordFailure registers a wrong PIN submission at now and returns the
// number of failures currently inside the window. Crossing the threshold
// arms a lockout and clears the window.
func (t *LockoutTracker) RecordFailure(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.prune(now)
	t.failures = append(t.failures, now)
	count := len(t.failures)

	if count >= t.policy.Threshold {
		duration := t.policy.Base << t.streak
		t.streak++
		t.lockedUntil = now.Add(duration)
		t.failures = t.failures[:0]
	}

	return count
}

// LockedUntil reports whether the gate is locked at now and, if so, the
// deadline at which submissions are accepted again.
func (t *LockoutTracker) LockedUntil(now time.Time) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Before(t.lockedUntil) {
		return t.lockedUntil, true
	}

	return time.Time{}, false
}

// Reset drops all recorded failures, the active lockout and the doubling
// streak. Called after a successful unlock.
func (t *LockoutTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failures = t.failures[:0]
	t.lockedUntil = time.Time{}
	t.streak = 0
}

// prune discards failures that fell out of the sliding window.
// Caller holds t.mu.
func (t *LockoutTracker) prune(now time.Time) {
	cutoff := now.Add(-t.policy.Window)
	kept := t.failures[:0]
	for _, at := range t.failures {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	t.failures = kept
}
