// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/msb/internal/adapters/digest"
	_ "go.trai.ch/msb/internal/adapters/logger"
	_ "go.trai.ch/msb/internal/adapters/project"
	_ "go.trai.ch/msb/internal/adapters/report"
	// Register app nodes.
	_ "go.trai.ch/msb/internal/app"
)
