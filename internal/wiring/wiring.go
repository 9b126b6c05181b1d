// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sharetree/internal/adapters/cas"
	_ "go.trai.ch/sharetree/internal/adapters/config"
	_ "go.trai.ch/sharetree/internal/adapters/fs"
	_ "go.trai.ch/sharetree/internal/adapters/graph"
	_ "go.trai.ch/sharetree/internal/adapters/logger"
	_ "go.trai.ch/sharetree/internal/adapters/telemetry"
	_ "go.trai.ch/sharetree/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/sharetree/internal/app"
	_ "go.trai.ch/sharetree/internal/engine/optimizer"
)
