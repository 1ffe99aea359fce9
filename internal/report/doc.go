// Package report writes the annealing run's output: a plain-text
// finalConfig.txt (one "pair,project,pref" line per pair, 1-based,
// followed by a "Final energy: <float>" trailer), and a structured
// JSON twin for downstream tooling. encoding/json is the standard
// library and is used here because no JSON library appears anywhere in
// the retrieval pack beyond what encoding/json already covers.
package report
