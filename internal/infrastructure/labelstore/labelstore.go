// Package labelstore materializes carrier label PDFs as temporary files.
package labelstore

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TempFileStore writes labels to uniquely named temporary PDF files and
// implements the shipping.LabelStore port. Files are named
// {tenant}-mrw-{trackingRef}-{random}.pdf; the caller owns cleanup.
type TempFileStore struct {
	// Dir is the target directory; empty means the system temp directory.
	Dir    string
	logger *zap.Logger
}

// NewTempFileStore creates a new TempFileStore.
func NewTempFileStore(dir string, logger *zap.Logger) *TempFileStore {
	return &TempFileStore{Dir: dir, logger: logger.Named("labelstore")}
}

// Store writes one label and returns its path.
func (s *TempFileStore) Store(_ context.Context, tenantID uuid.UUID, trackingRef string, pdf []byte) (string, error) {
	pattern := fmt.Sprintf("%s-mrw-%s-*.pdf", tenantID, trackingRef)
	file, err := os.CreateTemp(s.Dir, pattern)
	if err != nil {
		return "", fmt.Errorf("labelstore: creating label file: %w", err)
	}

	if _, err := file.Write(pdf); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("labelstore: writing label file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("labelstore: closing label file: %w", err)
	}

	s.logger.Info("generated tmp label",
		zap.String("tracking_ref", trackingRef),
		zap.String("path", file.Name()))
	return file.Name(), nil
}
