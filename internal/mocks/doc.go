// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes function fields; an unset field
// falls back to a sensible zero behavior so tests only stub what they
// exercise.
package mocks
