// SPDX-License-Identifier: MIT

package basis

import "math/rand/v2"

// Option configures Choose.
type Option func(*options)

type options struct {
	src rand.Source // nil draws from the global generator
}

// WithSeed makes sampling deterministic: equal seeds give equal bases.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.src = rand.NewPCG(seed, seed) }
}

// WithSource draws from a caller-owned source. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("basis: WithSource(nil)")
	}

	return func(o *options) { o.src = src }
}

func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}

	return o
}
