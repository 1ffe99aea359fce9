// Package anneal implements the simulated-annealing scheduler: an outer
// loop over a fixed temperature schedule, and an inner equilibration
// epoch that proposes moves and accepts or rejects them under four
// ordered predicates (uniqueness, Metropolis, zero-temperature greedy
// descent, workload feasibility).
//
// The outer loop is driven by a fixed epoch count rather than a
// floating-point "while T >= 0" descent — this removes the float-drift
// termination bug the reference source exhibits while visiting the
// exact same temperature values. The final epoch plays the role of the
// reference's "T == 0" special case.
//
// A Scheduler owns its matrices, assignment state, counters, and PRNG
// source rather than any package-level global; it accepts a
// context.Context on Run so a caller can cancel a long run, the same
// shape lvlath/flow's EdmondsKarp(ctx, ...) uses for its blocking
// operation.
package anneal
