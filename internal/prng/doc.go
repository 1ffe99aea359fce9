// Package prng implements a combined shift-register pseudorandom
// generator for exact, cross-implementation bit-level reproducibility.
//
// Two independent R-sequence generators, with parameters (M,S) =
// (250,103) and (521,168) over 31-bit integers, are each warmed up from
// a congruential seed and then XORed together and scaled into a double
// in [0,1): warm a congruential generator for 10000 steps, seed two
// working buffers from its output, force linear independence of the
// low bit columns, then run each shift-register nrand steps before the
// first draw.
//
// Source is seeded once via New and is not safe for concurrent use —
// the annealing scheduler that owns it is itself single-threaded.
// Construction follows the same functional-options shape lvlath/builder
// uses to wrap math/rand.Rand (here WithStreamSize; the seed is New's
// argument), even though
// the generator itself cannot be math/rand: an exact,
// cross-implementation-reproducible bit stream is the requirement, and
// only this construction provides it.
package prng
