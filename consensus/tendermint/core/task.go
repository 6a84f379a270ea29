package core

import "time"

// TaskID is an opaque identity meaningful only to the single-height
// machine (e.g. a proposal timeout for a given round); the core never
// inspects it beyond carrying it from Push to delivery (§3).
type TaskID any

// Task is a time-delayed internal event emitted by the single-height
// machine, most commonly a round timeout. The core treats both fields
// opaquely except Delay, which the scheduler reads to decide firing order
// (§3, §4.5).
type Task struct {
	ID    TaskID
	Delay time.Duration
}
