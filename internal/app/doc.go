// Package app builds the CLI's dependency graph.
//
// NewWire turns a Config into a logger, the report and result stores and the
// codec service; Wire.Cracker adds the crack service, loading the word list
// only for the dictionary pipeline.
package app
