// Package config loads the run configuration ("compile-time or
// startup constants": P, N, L, CSV paths, the weight schedule,
// T0/DeltaT, and the PRNG seed) from a TOML file, decoded with
// github.com/BurntSushi/toml the way tutu-network/tutu loads its
// ~/.tutu/config.toml.
package config
