package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.VerifierNodeID,
			scheduler.NodeID,
			fs.WriterNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			fs.WalkerNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConstantsLoader](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.FileWalker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, verifier, sched, writer, hasher, store, walker, log, telemetry), nil
}
