// Package useragent rotates the browser identity presented by each session.
//
// The pool mixes mobile and desktop fingerprints from several vendors so that
// consecutive sessions do not share an obvious signature. Selection is uniform
// and stateless: the same identity may be returned twice in a row.
package useragent

import "math/rand/v2"

// Picker returns an identity string for a new session.
type Picker func() string

// Random returns an identity chosen uniformly at random from the pool.
func Random() string {
	return pool[rand.IntN(len(pool))]
}

// Pool returns a copy of every identity Random can return.
func Pool() []string {
	out := make([]string, len(pool))
	copy(out, pool[:])
	return out
}
