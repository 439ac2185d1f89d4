// Package mock provides deterministic test doubles for the ai interfaces.
// Default behaviors are stable across runs (hash-seeded vectors, word-derived
// criteria), so tests that don't inject custom functions stay reproducible.
package mock
