// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

// Playground binary for profiling and eyeballing the trie under a
// random workload: builds a chain of persistent versions, probes hit
// and miss lookups against the newest and an old version.
package main

import (
	"math/rand/v2"
	"os"
	"time"

	trie "github.com/bandiaoz/CMU15-445"
	"github.com/rs/zerolog"
)

const (
	numKeys   = 100_000
	numProbes = 1_000_000
	maxKeyLen = 24
)

var prng = rand.New(rand.NewPCG(42, 42))

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = randomKey()
	}

	start := time.Now()
	t := trie.Trie{}
	for i, k := range keys {
		t = t.Put(k, i)
	}
	log.Info().
		Int("size", t.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("build")

	// old version, pinned while the newest version diverges
	old := t

	start = time.Now()
	for _, k := range keys[:numKeys/2] {
		t = t.Remove(k)
	}
	log.Info().
		Int("size", t.Size()).
		Int("old_size", old.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("remove half")

	start = time.Now()
	var hits int
	for i := range numProbes {
		if _, ok := trie.Get[int](t, keys[i%numKeys]); ok {
			hits++
		}
	}
	log.Info().
		Int("probes", numProbes).
		Int("hits", hits).
		Dur("elapsed", time.Since(start)).
		Msg("probe newest")

	start = time.Now()
	hits = 0
	for i := range numProbes {
		if _, ok := trie.Get[int](old, keys[i%numKeys]); ok {
			hits++
		}
	}
	log.Info().
		Int("probes", numProbes).
		Int("hits", hits).
		Dur("elapsed", time.Since(start)).
		Msg("probe old version")
}

// randomKey returns a random lowercase key with 1..maxKeyLen bytes.
func randomKey() string {
	b := make([]byte, 1+prng.IntN(maxKeyLen))
	for i := range b {
		b[i] = byte('a' + prng.IntN(26))
	}
	return string(b)
}
