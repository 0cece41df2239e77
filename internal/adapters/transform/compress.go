// Package transform provides source transforms applied by the bundler.
package transform

import (
	"regexp"

	"go.trai.ch/bundle/internal/core/ports"
)

// attributeMetadata matches the attribute fields that only serve documentation
// and schema generation. Removing them shrinks minified bundles considerably.
var attributeMetadata = regexp.MustCompile(
	`description: '.*',?` +
		`|description: \[[\s\S]*?\]\.join\(.*\),?` +
		`|requiredOpts: \[[\s\S]*?\],?` +
		`|otherOpts: \[[\s\S]*?\],?` +
		`|hrName: '.*',?`,
)

var _ ports.Transform = (*AttributeCompressor)(nil)

// AttributeCompressor strips attribute metadata from module sources.
type AttributeCompressor struct{}

// NewAttributeCompressor creates a new AttributeCompressor.
func NewAttributeCompressor() *AttributeCompressor {
	return &AttributeCompressor{}
}

// Name implements ports.Transform.
func (c *AttributeCompressor) Name() string {
	return "compress-attributes"
}

// Apply removes every attribute metadata field from src.
func (c *AttributeCompressor) Apply(_ string, src []byte) ([]byte, error) {
	return attributeMetadata.ReplaceAll(src, nil), nil
}
