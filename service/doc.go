// Package service orchestrates document search: discovery, lexical path
// matching, per-file extraction, batched delegation to an external semantic
// reasoner, score merging and report rendering.
//
// This package is intended for embedding doclens capabilities into other
// programs without shelling out to the CLI.
package service
