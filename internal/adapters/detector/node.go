package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/core/domain"
)

// NodeID is the unique identifier for the host platform Graft node.
const NodeID graft.ID = "adapter.detector.platform"

func init() {
	graft.Register(graft.Node[domain.Platform]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Platform, error) {
			return Host(), nil
		},
	})
}
