// Package subkey recovers the key letter of a single column.
//
// FrequencyRank scores each of the 26 letters by how English the
// letter-frequency ranking of the decrypted column looks and returns several
// candidates; Correlation returns the single letter whose decryption best
// correlates with English letter frequencies.
package subkey
