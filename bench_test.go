// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchKeys(prng *rand.Rand, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		b := make([]byte, 1+prng.IntN(16))
		for j := range b {
			b[j] = byte('a' + prng.IntN(26))
		}
		keys[i] = string(b)
	}
	return keys
}

func BenchmarkGet(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))

	for _, n := range []int{100, 10_000, 100_000} {
		keys := benchKeys(prng, n)

		tr := Trie{}
		for i, k := range keys {
			tr = tr.Put(k, i)
		}

		b.Run(fmt.Sprintf("keys_%d", n), func(b *testing.B) {
			for i := 0; b.Loop(); i++ {
				tr.Get(keys[i%n])
			}
		})
	}
}

func BenchmarkPut(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))

	for _, n := range []int{100, 10_000, 100_000} {
		keys := benchKeys(prng, n)

		tr := Trie{}
		for i, k := range keys {
			tr = tr.Put(k, i)
		}

		b.Run(fmt.Sprintf("into_%d", n), func(b *testing.B) {
			for i := 0; b.Loop(); i++ {
				// every iteration derives and drops one version
				_ = tr.Put(keys[i%n], i)
			}
		})
	}
}

func BenchmarkRemove(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))

	for _, n := range []int{100, 10_000, 100_000} {
		keys := benchKeys(prng, n)

		tr := Trie{}
		for i, k := range keys {
			tr = tr.Put(k, i)
		}

		b.Run(fmt.Sprintf("from_%d", n), func(b *testing.B) {
			for i := 0; b.Loop(); i++ {
				_ = tr.Remove(keys[i%n])
			}
		})
	}
}
