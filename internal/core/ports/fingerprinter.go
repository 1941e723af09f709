package ports

import "go.trai.ch/msb/internal/core/domain"

// Fingerprinter defines the interface for computing target fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a stable digest of the target definition:
	// its attributes, tasks, parameters and outputs.
	Fingerprint(target *domain.Target) string
}
