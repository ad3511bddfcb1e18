/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

// Package lrucache provides a size-bounded in-memory map with LRU eviction policy.
// It's used for keeping per-key state (e.g., gates) with a limited memory footprint.
package lrucache
