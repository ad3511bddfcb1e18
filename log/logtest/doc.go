/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

// Package logtest provides loggers for tests: a synchronous JSON logger and a Recorder
// that keeps logged entries in memory.
package logtest
