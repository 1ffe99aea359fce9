// Package move implements the single-pair reassignment move: choose a
// pair, choose a preference rank different from its current one, and
// resolve that rank to the first matching project.
//
// The pre-move state is captured in a Proposal value returned by the
// move itself, with an explicit Revert method, rather than the reference
// implementation's bare 3-tuple: a tagged proposal is harder to revert
// incorrectly than "remember which three array slots changed".
//
// The rank draw uses a single PRNG draw over the three (or, from an
// unassigned pair, four) ranks that are not the pair's current rank,
// rather than the reference's resample-until-different loop —
// equivalent in distribution, and it keeps the PRNG draw count per move
// fixed regardless of control flow.
package move
