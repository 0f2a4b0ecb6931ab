// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package variant provides deterministic, seedless variant selection for
// multi-tenant rendering. The same entity always resolves to the same
// variant across processes and restarts, without any stored state.
package variant

// Hash computes a 32-bit polynomial rolling hash of s and returns its
// absolute value. The accumulation is hash = (hash << 5) - hash + char,
// reduced to a signed 32-bit integer at every step so results are stable
// regardless of platform word size.
func Hash(s string) uint32 {
	var hash int32
	for _, r := range s {
		hash = (hash << 5) - hash + int32(r)
	}
	if hash < 0 {
		return uint32(-hash)
	}
	return uint32(hash)
}

// Select picks one element of pool for the given entity ID. The salt makes
// independent selections possible from the same ID: different salts give
// uncorrelated choices. Returns the zero value for an empty pool.
func Select[T any](entityID string, pool []T, salt string) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	idx := Hash(entityID+salt) % uint32(len(pool))
	return pool[idx]
}

// Dispatch resolves a stored 1-based template slot index against a catalog.
// Out-of-range indices (including zero and negatives) fall back to the first
// entry so a tenant row can never produce an undefined render.
func Dispatch[T any](slotIndex int, catalog []T) T {
	var zero T
	if len(catalog) == 0 {
		return zero
	}
	if slotIndex < 1 || slotIndex > len(catalog) {
		return catalog[0]
	}
	return catalog[slotIndex-1]
}
