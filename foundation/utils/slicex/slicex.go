// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic collection helpers: bulk append, in-place removal by
//              predicate, for-each with side effects and pop of the first
//              matching element, plus the search helpers they build on.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-19 v0.2.0: Mutating helpers on *[]T with argument errors

package slicex

import (
	"errors"
	"slices"

	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
)

// ErrNilArgument is the cause of every error for a nil list or function.
var ErrNilArgument = errors.New("argument cannot be nil")

func nilArgument(operation, argument string) error {
	return mdwerrors.InvalidArgument(mdwerrors.ModuleSlicex, operation, argument, ErrNilArgument)
}

// ===============================
// Mutating Functions
// ===============================

// AddRange appends items to the collection in order.
// Passing no items leaves the collection unchanged.
func AddRange[T any](collection *[]T, items ...T) error {
	if collection == nil {
		return nilArgument("AddRange", "collection")
	}

	*collection = append(*collection, items...)
	return nil
}

// RemoveWhere removes every element matching the predicate in place and
// returns how many were removed. The order of the remaining elements is kept.
func RemoveWhere[T any](list *[]T, predicate func(T) bool) (int, error) {
	if list == nil {
		return 0, nilArgument("RemoveWhere", "list")
	}
	if predicate == nil {
		return 0, nilArgument("RemoveWhere", "predicate")
	}

	before := len(*list)
	*list = slices.DeleteFunc(*list, predicate)
	return before - len(*list), nil
}

// Pop removes the first element matching the predicate and returns it.
// found is false and the list is unchanged when nothing matches.
func Pop[T any](list *[]T, predicate func(T) bool) (item T, found bool, err error) {
	if list == nil {
		return item, false, nilArgument("Pop", "list")
	}
	if predicate == nil {
		return item, false, nilArgument("Pop", "predicate")
	}

	index := IndexOfBy(*list, predicate)
	if index < 0 {
		return item, false, nil
	}

	item = (*list)[index]
	*list = slices.Delete(*list, index, index+1)
	return item, true, nil
}

// PopOrDefault removes the first element matching the predicate and returns
// it, or returns the zero value of T when nothing matches.
func PopOrDefault[T any](list *[]T, predicate func(T) bool) (T, error) {
	if list == nil {
		var zero T
		return zero, nilArgument("PopOrDefault", "list")
	}
	if predicate == nil {
		var zero T
		return zero, nilArgument("PopOrDefault", "predicate")
	}

	item, _, err := Pop(list, predicate)
	return item, err
}

// ForEach calls action for every element in order and returns the same
// slice so calls can be chained. A nil slice is treated as empty.
func ForEach[T any](items []T, action func(T)) ([]T, error) {
	if action == nil {
		return items, nilArgument("ForEach", "action")
	}

	for _, item := range items {
		action(item)
	}
	return items, nil
}

// ===============================
// Transformation Functions
// ===============================

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

// ===============================
// Search Functions
// ===============================

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOfBy(slice, func(item T) bool { return item == element }) >= 0
}

// IndexOfBy returns the first index where predicate returns true, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if slice == nil || predicate == nil {
		return -1
	}

	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Find returns the first element matching the predicate, or zero value if none
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	if index := IndexOfBy(slice, predicate); index >= 0 {
		return slice[index], true
	}

	var zero T
	return zero, false
}
