// File: slicex.go
// Title: Slice Utilities
// Description: Generic helpers for filtering, mapping, deduplicating and
//              searching slices, used for allow-lists and word lists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers the toolkit uses, added
//                      Compact and UniqueBy with first-seen order

package slicex

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	return UniqueBy(slice, func(item T) T { return item })
}

// UniqueBy removes elements whose key was already seen, keeping the first
func UniqueBy[T any, K comparable](slice []T, keyFunc func(T) K) []T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	seen := make(map[K]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		key := keyFunc(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Compact drops zero values, such as empty strings left by splitting
func Compact[T comparable](slice []T) []T {
	var zero T
	return Filter(slice, func(item T) bool { return item != zero })
}

// ContainsBy reports whether any element matches the predicate
func ContainsBy[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Clone returns a copy of slice; nil stays nil
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	return append(make([]T, 0, len(slice)), slice...)
}
