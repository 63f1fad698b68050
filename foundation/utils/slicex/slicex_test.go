// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Tests for the mutating collection helpers and the search and
//              transformation functions they build on.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-19 v0.2.0: AddRange, RemoveWhere, Pop, PopOrDefault and ForEach

package slicex

import (
	"errors"
	"slices"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
)

type user struct {
	ID    int
	Score int
}

func assertNilArgument(t *testing.T, err error, argument string) {
	t.Helper()
	if !errors.Is(err, ErrNilArgument) {
		t.Fatalf("error = %v, want ErrNilArgument", err)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("error code = %v, want INVALID_ARGUMENT", mdwerror.GetCode(err))
	}
	if !strings.Contains(err.Error(), argument) {
		t.Errorf("error %q does not name argument %q", err, argument)
	}
}

func TestAddRange(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		collection := []int{1, 2}
		if err := AddRange(&collection, 3, 4); err != nil {
			t.Fatalf("AddRange() error = %v", err)
		}
		if !slices.Equal(collection, []int{1, 2, 3, 4}) {
			t.Errorf("AddRange() = %v, want [1 2 3 4]", collection)
		}
	})

	t.Run("spread slice", func(t *testing.T) {
		var collection []string
		if err := AddRange(&collection, []string{"a", "b"}...); err != nil {
			t.Fatalf("AddRange() error = %v", err)
		}
		if !slices.Equal(collection, []string{"a", "b"}) {
			t.Errorf("AddRange() = %v", collection)
		}
	})

	t.Run("no items", func(t *testing.T) {
		collection := []int{1}
		if err := AddRange(&collection); err != nil || len(collection) != 1 {
			t.Errorf("AddRange() = %v, %v", collection, err)
		}
	})

	t.Run("nil collection", func(t *testing.T) {
		assertNilArgument(t, AddRange[int](nil, 1), "collection")
	})
}

func TestRemoveWhere(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6}
	removed, err := RemoveWhere(&list, func(x int) bool { return x%2 == 0 })
	if err != nil {
		t.Fatalf("RemoveWhere() error = %v", err)
	}
	if removed != 3 || !slices.Equal(list, []int{1, 3, 5}) {
		t.Errorf("RemoveWhere() = %d, %v; want 3, [1 3 5]", removed, list)
	}

	removed, _ = RemoveWhere(&list, func(x int) bool { return x > 10 })
	if removed != 0 || len(list) != 3 {
		t.Errorf("RemoveWhere() without match = %d, %v", removed, list)
	}

	_, err = RemoveWhere[int](nil, func(int) bool { return true })
	assertNilArgument(t, err, "list")
	_, err = RemoveWhere(&list, nil)
	assertNilArgument(t, err, "predicate")
}

func TestPopOrDefault(t *testing.T) {
	t.Run("removes first match", func(t *testing.T) {
		list := []string{"string 1", "string 2"}
		item, err := PopOrDefault(&list, func(s string) bool { return strings.HasPrefix(s, "string") })
		if err != nil {
			t.Fatalf("PopOrDefault() error = %v", err)
		}
		if item != "string 1" {
			t.Errorf("PopOrDefault() = %q, want %q", item, "string 1")
		}
		if !slices.Equal(list, []string{"string 2"}) {
			t.Errorf("remaining = %v, want [string 2]", list)
		}
	})

	t.Run("no match keeps list", func(t *testing.T) {
		list := []string{"string 1", "string 2"}
		item, err := PopOrDefault(&list, func(s string) bool { return strings.HasPrefix(s, "other") })
		if err != nil || item != "" {
			t.Errorf("PopOrDefault() = %q, %v; want empty, nil", item, err)
		}
		if len(list) != 2 {
			t.Errorf("list length = %d, want 2", len(list))
		}
	})

	t.Run("zero value for ints", func(t *testing.T) {
		list := []int{1, 2, 3}
		item, err := PopOrDefault(&list, func(x int) bool { return x > 3 })
		if err != nil || item != 0 {
			t.Errorf("PopOrDefault() = %d, %v; want 0, nil", item, err)
		}
	})

	t.Run("nil arguments", func(t *testing.T) {
		list := []string{"a"}
		_, err := PopOrDefault(&list, nil)
		assertNilArgument(t, err, "predicate")
		_, err = PopOrDefault[string](nil, func(string) bool { return true })
		assertNilArgument(t, err, "list")
	})
}

func TestPop(t *testing.T) {
	list := []int{5, 7, 9, 7}

	item, found, err := Pop(&list, func(x int) bool { return x == 7 })
	if err != nil || !found || item != 7 {
		t.Fatalf("Pop() = %d, %v, %v", item, found, err)
	}
	if !slices.Equal(list, []int{5, 9, 7}) {
		t.Errorf("remaining = %v, want [5 9 7]", list)
	}

	// a stored zero value is still reported as found
	list = []int{0}
	item, found, _ = Pop(&list, func(x int) bool { return x == 0 })
	if !found || item != 0 || len(list) != 0 {
		t.Errorf("Pop(zero) = %d, %v, len %d", item, found, len(list))
	}
}

func TestForEach(t *testing.T) {
	t.Run("side effects on pointers", func(t *testing.T) {
		users := []*user{{ID: 1, Score: 10}, {ID: 2, Score: 20}}
		result, err := ForEach(users, func(u *user) { u.Score *= 2 })
		if err != nil {
			t.Fatalf("ForEach() error = %v", err)
		}
		if result[0].Score != 20 || result[1].Score != 40 {
			t.Errorf("scores = %d, %d; want 20, 40", result[0].Score, result[1].Score)
		}
		if &result[0] != &users[0] {
			t.Error("ForEach() must return the same slice")
		}
	})

	t.Run("visits in order", func(t *testing.T) {
		var seen []int
		_, _ = ForEach([]int{3, 1, 2}, func(x int) { seen = append(seen, x) })
		if !slices.Equal(seen, []int{3, 1, 2}) {
			t.Errorf("order = %v", seen)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		result, err := ForEach[int](nil, func(int) { t.Error("action called") })
		if err != nil || result != nil {
			t.Errorf("ForEach(nil) = %v, %v", result, err)
		}
	})

	t.Run("nil action", func(t *testing.T) {
		_, err := ForEach([]int{1}, nil)
		assertNilArgument(t, err, "action")
	})
}

func TestSearchAndTransform(t *testing.T) {
	input := []string{"camel", "pascal", "snake"}

	if got := IndexOfBy(input, func(s string) bool { return s == "snake" }); got != 2 {
		t.Errorf("IndexOfBy() = %d, want 2", got)
	}
	if got := IndexOfBy(input, nil); got != -1 {
		t.Errorf("IndexOfBy(nil predicate) = %d, want -1", got)
	}
	if !Contains(input, "pascal") || Contains(input, "kebab") {
		t.Error("Contains() mismatch")
	}
	if got, ok := Find(input, func(s string) bool { return strings.HasPrefix(s, "p") }); !ok || got != "pascal" {
		t.Errorf("Find() = %q, %v", got, ok)
	}
	if _, ok := Find(input, func(s string) bool { return s == "" }); ok {
		t.Error("Find() should not match")
	}
	if got := Filter(input, func(s string) bool { return len(s) == 5 }); !slices.Equal(got, []string{"camel", "snake"}) {
		t.Errorf("Filter() = %v", got)
	}
	if got := Map(input, func(s string) int { return len(s) }); !slices.Equal(got, []int{5, 6, 5}) {
		t.Errorf("Map() = %v", got)
	}
}
