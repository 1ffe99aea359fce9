// Package cost evaluates an alloc.State: the preference energy the
// scheduler minimises, and the two constraint-violation counters
// (uniqueness clashes and supervisor workload clashes) that gate move
// acceptance. All three queries are pure functions of their arguments —
// no package-level state, so the annealing scheduler can call them on
// every proposed move without synchronization.
//
// The workload sum in WorkloadClashCount is accumulated supervisors
// outer, projects inner, in that fixed order, to keep violation counts
// bit-identical across runs with identical inputs.
package cost
