// Package sched provides a single-threaded, cooperative timer and frame
// scheduler driven by virtual time.
//
// A [Loop] never starts goroutines or sleeps. Front ends pump it by calling
// [Loop.Advance] with the current time (a bubbletea frame message, a raylib
// frame), and tests pump it with synthetic times:
//
//   - [Loop.AfterFunc]: one-shot callback after a delay
//   - [Loop.Every]: repeating callback on a fixed cadence
//   - [Loop.RequestFrame]: callback on the next display refresh
//
// Every call returns a [Timer] whose Stop cancels it. [Loop.Pending] counts
// live timers, which makes leaked timers visible in tests.
//
// # Thread Safety
//
// Loop is NOT goroutine-safe. All callbacks run on the goroutine calling
// Advance.
package sched
