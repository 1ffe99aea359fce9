// Package projsa assigns student pairs to supervised projects.
//
// A preference matrix records, for each project, which pairs ranked it
// and at what priority (1 = most preferred). A workload matrix records
// how much of each supervisor's capacity a project would consume if
// assigned. Starting from a feasible seed assignment (internal/
// seedinit), a simulated-annealing schedule (internal/anneal) searches
// for an assignment minimizing total preference-rank cost
// (internal/cost) while never reintroducing a uniqueness or workload
// violation.
//
// The annealing schedule is driven by a combined shift-register
// pseudorandom generator (internal/prng) rather than math/rand, so that
// a run seeded with a given integer reproduces the identical sequence
// of moves bit-for-bit across implementations.
//
// See cmd/projsa for the command-line tool; its run subcommand shows
// how the internal packages are wired together in process.
package projsa
