// Package alloc defines the central data model shared by the cost model,
// the move generator, and the annealing scheduler: the preference and
// workload matrices, the assignment state, and the preference-weight
// schedule.
//
// Everything here is a plain value type. There is no locking and no
// hidden global state; callers own a *State and pass it explicitly to
// the cost, move, seedinit, and anneal packages, the way lvlath's core
// package owns a *Graph that its algorithm packages take as a parameter.
package alloc
