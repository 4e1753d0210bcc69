// Package cleanup provides the shared text-cleaning vocabulary used to turn raw
// GTFS labels into display text.
//
// This package is organized into:
// - rule.go: Rule, Rules, Pipeline and the Transformer interface
// - words.go: bounded-word rules (and/at, via/to clauses, trail)
// - streets.go: street-type abbreviation expansion
// - numbers.go: ordinal and leading-zero cleanup
// - label.go: bounds and final label cleanup
// - case.go: selective upper/title casing
//
// Every exported rule is compiled once at package init and never mutated, so
// all of them are safe for concurrent use. Order matters: a Pipeline applies
// its steps strictly in declaration order.
package cleanup
