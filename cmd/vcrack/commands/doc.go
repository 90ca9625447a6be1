// Package commands defines the vcrack CLI and wires dependencies for subcommands.
//
// Commands
//
//   - normal   Encrypt or decrypt with a known key
//   - crack    Recover the key of a ciphertext and print the plaintext
//   - report   Print a report saved by crack --report
//
// Input is read from the first argument or stdin and output is written to the
// second argument or stdout.
//
// # Implementation
//
// The root command builds the logger, stores and services from the parsed
// flags before any subcommand runs. The word list is loaded only by crack,
// and only when its pipeline validates against a dictionary.
package commands
