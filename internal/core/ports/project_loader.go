// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/msb/internal/core/domain"

// ProjectLoader defines the interface for loading project documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load parses the project at path, follows its imports and returns the project
	// with every visible target.
	Load(path string) (*domain.Project, error)
}
