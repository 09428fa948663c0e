// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package value

import "testing"

// payload implements Cloner[*payload] and Equaler[*payload].
type payload struct {
	name  string
	attrs map[string]int
}

func (p *payload) Clone() *payload {
	if p == nil {
		return nil
	}
	c := &payload{name: p.name, attrs: make(map[string]int, len(p.attrs))}
	for k, v := range p.attrs {
		c.attrs[k] = v
	}
	return c
}

func (p *payload) Equal(other *payload) bool {
	return p.name == other.name
}

func TestEqualFallback(t *testing.T) {
	t.Parallel()

	if !Equal(42, 42) {
		t.Error("equal ints must compare equal")
	}
	if Equal(42, 43) {
		t.Error("differing ints must compare unequal")
	}

	// non-comparable types go through reflect.DeepEqual
	if !Equal([]string{"a", "b"}, []string{"a", "b"}) {
		t.Error("deep-equal slices must compare equal")
	}
	if Equal([]string{"a"}, []string{"b"}) {
		t.Error("differing slices must compare unequal")
	}
}

func TestEqualerOverride(t *testing.T) {
	t.Parallel()

	// same name, different attrs: the override only looks at the name
	p1 := &payload{name: "x", attrs: map[string]int{"a": 1}}
	p2 := &payload{name: "x", attrs: map[string]int{"b": 2}}

	if !Equal(p1, p2) {
		t.Error("Equaler override must be used instead of DeepEqual")
	}
}

func TestCloneVal(t *testing.T) {
	t.Parallel()

	p := &payload{name: "x", attrs: map[string]int{"a": 1}}
	c := CloneVal(p)

	if c == p {
		t.Fatal("CloneVal must return a new pointer for a Cloner")
	}
	c.attrs["a"] = 99
	if p.attrs["a"] != 1 {
		t.Error("clone must not share the attrs map")
	}

	// nil pointer of a Cloner type is passed through
	var nilP *payload
	if got := CloneVal(nilP); got != nil {
		t.Errorf("CloneVal of nil Cloner, want nil, got %v", got)
	}

	// non-Cloner values are passed through unchanged
	if got := CloneVal(7); got != 7 {
		t.Errorf("CloneVal of plain value, want 7, got %v", got)
	}
}
