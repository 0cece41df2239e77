package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/adapters/esbuild"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/adapters/minify"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/adapters/transform"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			esbuild.NodeID,
			minify.NodeID,
			fs.WriterNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			logger.NodeID,
			progrock.NodeID,
			transform.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			bundler, err := graft.Dep[ports.Bundler](ctx)
			if err != nil {
				return nil, err
			}

			minifier, err := graft.Dep[ports.Minifier](ctx)
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

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			compressor, err := graft.Dep[*transform.AttributeCompressor](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(
				bundler,
				minifier,
				writer,
				hasher,
				store,
				log,
				telemetry,
				[]ports.Transform{compressor},
			), nil
		},
	})
}
