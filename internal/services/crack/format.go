package crack

import (
	"fmt"
	"io"
	"strconv"

	"vcrack/internal/domain"
)

// Label names the score of a key candidate in output.
func Label(k domain.KeyCandidate) string {
	if k.Source == domain.StrategyKasiski {
		return "factors=" + strconv.FormatFloat(k.Score, 'f', -1, 64)
	}
	return "ic=" + strconv.FormatFloat(k.Score, 'f', 4, 64)
}

// Write prints every key of r as a labelled block followed by its plaintext.
func Write(w io.Writer, r domain.Report) error {
	for _, k := range r.Keys {
		if _, err := fmt.Fprintf(w, "Decrypt using %s(%s):\n%s\n\n", k.Key, Label(k.KeyCandidate), k.Plaintext); err != nil {
			return err
		}
	}
	return nil
}
