// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ship/internal/adapters/archive"
	_ "go.trai.ch/ship/internal/adapters/cas"
	_ "go.trai.ch/ship/internal/adapters/config"
	_ "go.trai.ch/ship/internal/adapters/detector"
	_ "go.trai.ch/ship/internal/adapters/fs"
	_ "go.trai.ch/ship/internal/adapters/logger"
	_ "go.trai.ch/ship/internal/adapters/manifest"
	_ "go.trai.ch/ship/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/ship/internal/app"
)
