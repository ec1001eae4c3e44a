// Package sample defines the sample dictionary contract shared by all
// datasets: a mapping from fixed string keys to fixed-shape numeric arrays.
//
// Samples are produced fresh on every retrieval. A dataset never caches or
// mutates a returned sample, so callers are free to modify it in place.
package sample
