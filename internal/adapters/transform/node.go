package transform

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the attribute compressor Graft node.
const NodeID graft.ID = "adapter.transform.compress_attributes"

func init() {
	graft.Register(graft.Node[*AttributeCompressor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*AttributeCompressor, error) {
			return NewAttributeCompressor(), nil
		},
	})
}
