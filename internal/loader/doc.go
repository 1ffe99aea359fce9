// Package loader reads the two CSV inputs a run needs: a P×N
// preference matrix (blank cell → rank 0) and a P×L workload matrix
// (blank cell → weight 0.0). Both readers validate declared shape
// against the parsed grid and the legal value range per cell.
//
// No CSV library appears anywhere in the retrieval pack, so parsing is
// built on the standard library's encoding/csv (which already tolerates
// a trailing \r before \n and ragged trailing commas) plus a small
// validation pass; see DESIGN.md for why no third-party CSV library was
// a better fit here.
package loader
