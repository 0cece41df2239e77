package esbuild

import "go.trai.ch/bundle/internal/core/ports"

// ApplyTransformsExported exports applyTransforms for testing.
func ApplyTransformsExported(transforms []ports.Transform, path string, src []byte) ([]byte, error) {
	return applyTransforms(transforms, path, src)
}

// IsVendoredExported exports isVendored for testing.
func IsVendoredExported(path string) bool {
	return isVendored(path)
}
