// Package timeutil provides an injectable clock so components that depend on
// wall time (the search cache in particular) can be tested deterministically.
package timeutil

import "time"

// Clock abstracts time.Now(). Use RealClock in production and MockClock in
// tests that need to advance time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the actual system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the clock's current frozen time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
