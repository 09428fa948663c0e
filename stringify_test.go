// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

import "testing"

func TestStringEmpty(t *testing.T) {
	t.Parallel()

	want := "▼\n"
	if got := (Trie{}).String(); got != want {
		t.Errorf("String of empty trie, want %q, got %q", want, got)
	}
}

func TestStringNesting(t *testing.T) {
	t.Parallel()

	tr := Trie{}.Put("a", 1).Put("ab", 2).Put("b", 3)

	want := `▼
├─ "a" (1)
│  └─ "ab" (2)
└─ "b" (3)
`
	if got := tr.String(); got != want {
		t.Errorf("String mismatch,\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestStringEmptyKeyAtRoot(t *testing.T) {
	t.Parallel()

	tr := Trie{}.Put("", 0).Put("x", 1)

	want := `▼
└─ "" (0)
   └─ "x" (1)
`
	if got := tr.String(); got != want {
		t.Errorf("String mismatch,\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestStringSkipsInteriorNodes(t *testing.T) {
	t.Parallel()

	// deep key without stored prefixes hangs directly below the root
	tr := Trie{}.Put("abcdef", 42)

	want := `▼
└─ "abcdef" (42)
`
	if got := tr.String(); got != want {
		t.Errorf("String mismatch,\nwant:\n%s\ngot:\n%s", want, got)
	}
}
