package ports

import (
	"io"

	"go.trai.ch/msb/internal/core/domain"
)

// Reporter defines the interface for rendering project summaries.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Render writes the summaries to w in the given format.
	Render(w io.Writer, format string, projects []domain.ProjectSummary) error
}
