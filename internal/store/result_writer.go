package store

import "vcrack/internal/domain"

// ResultFileWriter writes the accepted plaintext of a crack run.
type ResultFileWriter struct{}

// WriteResult replaces the file at path with plaintext.
func (ResultFileWriter) WriteResult(path, plaintext string) error {
	return writeFile(path, []byte(plaintext), 0o644)
}

// Compile-time assertion that ResultFileWriter implements domain.ResultWriter.
var _ domain.ResultWriter = ResultFileWriter{}
