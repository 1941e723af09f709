package digest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/msb/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprinter Graft node.
const NodeID graft.ID = "adapter.digest.fingerprinter"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
