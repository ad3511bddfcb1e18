/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

// Package gate provides an execution gate that runs an action only if at least
// a minimum interval has elapsed since the last permitted execution.
//
// The state of a gate is an explicit object owned by the caller. Each logical
// rate-limited operation should have its own gate:
//   - Gate is meant to be owned by a single goroutine and is not safe for concurrent use.
//     Two goroutines with their own Gate instances are rate-limited independently.
//   - SharedGate is safe for concurrent use. Within one interval exactly one caller is permitted.
//   - KeyedGate maintains one SharedGate per key (e.g., per entity or per log message)
//     with a fixed interval and an LRU-bounded set of keys.
//
// The boundary is inclusive: a call made exactly minInterval after the last permitted
// execution is permitted. The first call is always permitted. A zero interval permits every call.
// Errors and panics from the action are not intercepted and the execution still counts.
package gate
