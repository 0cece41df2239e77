package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/core/ports"
)

// NodeID is the unique identifier for the constants loader Graft node.
const NodeID graft.ID = "adapter.constants_loader"

func init() {
	graft.Register(graft.Node[ports.ConstantsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConstantsLoader, error) {
			return NewLoader(), nil
		},
	})
}
