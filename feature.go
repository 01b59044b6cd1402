package gpudev

// Feature is an optional capability an adapter may support and a device may
// be created with. Feature sets are small; they are stored as slices and
// looked up with a linear scan. Order carries no meaning.
type Feature uint32

const (
	// FeatureDepthClipControl allows disabling depth clipping.
	FeatureDepthClipControl Feature = iota

	// FeatureDepth32FloatStencil8 enables the depth32float-stencil8 format.
	FeatureDepth32FloatStencil8

	// FeatureTimestampQuery enables GPU timestamp queries.
	FeatureTimestampQuery

	// FeatureIndirectFirstInstance allows non-zero first instance in
	// indirect draws.
	FeatureIndirectFirstInstance

	// FeatureShaderF16 enables 16-bit floats in shaders.
	FeatureShaderF16

	// FeatureRG11B10UfloatRenderable makes rg11b10ufloat renderable.
	FeatureRG11B10UfloatRenderable

	// FeatureBGRA8UnormStorage enables bgra8unorm storage textures.
	FeatureBGRA8UnormStorage

	// FeatureFloat32Filterable makes float32 textures filterable.
	FeatureFloat32Filterable

	// FeatureTextureCompressionBC enables BC compressed textures.
	FeatureTextureCompressionBC

	// FeatureTextureCompressionETC2 enables ETC2 compressed textures.
	FeatureTextureCompressionETC2

	// FeatureTextureCompressionASTC enables ASTC compressed textures.
	FeatureTextureCompressionASTC
)

// String returns the canonical feature name used for diagnostics.
func (f Feature) String() string {
	switch f {
	case FeatureDepthClipControl:
		return "depth-clip-control"
	case FeatureDepth32FloatStencil8:
		return "depth32float-stencil8"
	case FeatureTimestampQuery:
		return "timestamp-query"
	case FeatureIndirectFirstInstance:
		return "indirect-first-instance"
	case FeatureShaderF16:
		return "shader-f16"
	case FeatureRG11B10UfloatRenderable:
		return "rg11b10ufloat-renderable"
	case FeatureBGRA8UnormStorage:
		return "bgra8unorm-storage"
	case FeatureFloat32Filterable:
		return "float32-filterable"
	case FeatureTextureCompressionBC:
		return "texture-compression-bc"
	case FeatureTextureCompressionETC2:
		return "texture-compression-etc2"
	case FeatureTextureCompressionASTC:
		return "texture-compression-astc"
	default:
		return "unknown"
	}
}

// containsFeature reports whether f appears in set.
func containsFeature(set []Feature, f Feature) bool {
	for _, have := range set {
		if have == f {
			return true
		}
	}
	return false
}

// cloneFeatures returns a defensive copy of set with duplicates removed,
// preserving first-occurrence order. A nil or empty set stays nil.
func cloneFeatures(set []Feature) []Feature {
	if len(set) == 0 {
		return nil
	}
	out := make([]Feature, 0, len(set))
	for _, f := range set {
		if !containsFeature(out, f) {
			out = append(out, f)
		}
	}
	return out
}
