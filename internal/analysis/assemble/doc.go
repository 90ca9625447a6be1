// Package assemble turns per-column subkey candidates into full keys.
//
// Product enumerates every combination lazily; Dedupe drops keys that are
// mostly repetitions of a shorter key found for another length.
package assemble
