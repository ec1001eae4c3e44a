// Package testutil provides deterministic helpers for dataset tests: a
// seeded RNG, synthetic image/mask generation, and a generator that writes
// a complete dummy dataset layout plus its distributable archive.
//
// Nothing in this package touches the network. LocalFetcher substitutes a
// local file copy for remote acquisition so download paths can be exercised
// hermetically.
package testutil
