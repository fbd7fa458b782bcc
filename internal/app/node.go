package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/adapters/archive"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			manifest.NodeID,
			config.NodeID,
			archive.NodeID,
			fs.CollectorNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[ports.ArtifactCollector](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	platform, err := graft.Dep[domain.Platform](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, executor, reader, loader, archiver, collector, hasher, store, platform), nil
}
