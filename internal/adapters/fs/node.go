package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/core/ports"
)

const (
	// CollectorNodeID is the unique identifier for the artifact collector Graft node.
	CollectorNodeID graft.ID = "adapter.artifact_collector"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactCollector, error) {
			return NewCollector(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
