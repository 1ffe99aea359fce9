package seedinit

import "errors"

// ErrDidNotConverge indicates the greedy repair loop exhausted its
// iteration cap without reaching zero total violations; fatal at
// startup.
var ErrDidNotConverge = errors.New("seedinit: feasible seed not reached within iteration cap")
