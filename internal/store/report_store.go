package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"vcrack/internal/crypto"
	"vcrack/internal/domain"
)

// ReportFileStore persists crack reports as JSON files. Reports saved with a
// passphrase are sealed with crypto.Seal.
type ReportFileStore struct {
	mu sync.Mutex
}

// NewReportFileStore returns a ReportFileStore.
func NewReportFileStore() *ReportFileStore { return &ReportFileStore{} }

// SaveReport writes r to path, sealing it when passphrase is not empty.
func (s *ReportFileStore) SaveReport(path string, r domain.Report, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := marshalJSON(r)
	if err != nil {
		return err
	}
	if passphrase != "" {
		sealed, err := crypto.Seal(passphrase, raw)
		crypto.Wipe(raw)
		if err != nil {
			return fmt.Errorf("seal report: %w", err)
		}
		raw = sealed
	}
	return writeFile(path, raw, 0o600)
}

// LoadReport reads the report at path. A sealed report needs its passphrase;
// without one domain.ErrSealed is returned.
func (s *ReportFileStore) LoadReport(path string, passphrase string) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := readFile(path)
	if err != nil {
		return domain.Report{}, err
	}
	if raw == nil {
		return domain.Report{}, fmt.Errorf("report %s: %w", path, os.ErrNotExist)
	}
	if crypto.IsSealed(raw) {
		if passphrase == "" {
			return domain.Report{}, domain.ErrSealed
		}
		if raw, err = crypto.Open(passphrase, raw); err != nil {
			return domain.Report{}, fmt.Errorf("open report: %w", err)
		}
	}
	var r domain.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.Report{}, err
	}
	return r, nil
}

// IsSealed reports whether the report at path is sealed. A missing report is
// not sealed; LoadReport reports it as missing.
func (s *ReportFileStore) IsSealed(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := readFile(path)
	if err != nil {
		return false, err
	}
	return crypto.IsSealed(raw), nil
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
