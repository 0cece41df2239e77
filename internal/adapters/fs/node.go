package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	WriterNodeID   graft.ID = "adapter.fs.writer"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.FileWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWriter, error) {
			return NewWriter(), nil
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
