package gpudev

// Limits describes the numeric bounds an adapter or device guarantees.
// Every adapter reports limits at least as permissive as DefaultLimits.
// This mirrors the WebGPU GPUSupportedLimits record.
type Limits struct {
	// MaxTextureDimension1D is the maximum width of a 1D texture.
	MaxTextureDimension1D uint32

	// MaxTextureDimension2D is the maximum width/height of a 2D texture.
	MaxTextureDimension2D uint32

	// MaxTextureDimension3D is the maximum extent of a 3D texture.
	MaxTextureDimension3D uint32

	// MaxTextureArrayLayers is the maximum number of texture array layers.
	MaxTextureArrayLayers uint32

	// MaxBindGroups is the maximum number of bind groups per pipeline.
	MaxBindGroups uint32

	// MaxBufferSize is the maximum buffer size in bytes.
	MaxBufferSize uint64

	// MaxUniformBufferBindingSize is the maximum uniform binding size.
	MaxUniformBufferBindingSize uint64

	// MaxStorageBufferBindingSize is the maximum storage binding size.
	MaxStorageBufferBindingSize uint64

	// MaxVertexBuffers is the maximum number of vertex buffers.
	MaxVertexBuffers uint32

	// MaxVertexAttributes is the maximum number of vertex attributes.
	MaxVertexAttributes uint32

	// MaxComputeWorkgroupStorageSize is the maximum workgroup storage
	// in bytes.
	MaxComputeWorkgroupStorageSize uint32

	// MaxComputeInvocationsPerWorkgroup is the maximum total invocations
	// in one workgroup.
	MaxComputeInvocationsPerWorkgroup uint32

	// MaxComputeWorkgroupSizeX is the maximum workgroup X dimension.
	MaxComputeWorkgroupSizeX uint32

	// MaxComputeWorkgroupSizeY is the maximum workgroup Y dimension.
	MaxComputeWorkgroupSizeY uint32

	// MaxComputeWorkgroupSizeZ is the maximum workgroup Z dimension.
	MaxComputeWorkgroupSizeZ uint32

	// MaxComputeWorkgroupsPerDimension is the maximum dispatch extent.
	MaxComputeWorkgroupsPerDimension uint32
}

// DefaultLimits returns the baseline limits every adapter is guaranteed to
// meet or exceed. The values follow the WebGPU specification defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxTextureDimension1D:             8192,
		MaxTextureDimension2D:             8192,
		MaxTextureDimension3D:             2048,
		MaxTextureArrayLayers:             256,
		MaxBindGroups:                     4,
		MaxBufferSize:                     256 * 1024 * 1024,
		MaxUniformBufferBindingSize:       64 * 1024,
		MaxStorageBufferBindingSize:       128 * 1024 * 1024,
		MaxVertexBuffers:                  8,
		MaxVertexAttributes:               16,
		MaxComputeWorkgroupStorageSize:    16384,
		MaxComputeInvocationsPerWorkgroup: 256,
		MaxComputeWorkgroupSizeX:          256,
		MaxComputeWorkgroupSizeY:          256,
		MaxComputeWorkgroupSizeZ:          64,
		MaxComputeWorkgroupsPerDimension:  65535,
	}
}

// Covers reports whether every limit in l is at least as permissive as the
// corresponding limit in req. A device request succeeds only when the
// adapter's limits cover the requested ones.
func (l Limits) Covers(req Limits) bool {
	return l.MaxTextureDimension1D >= req.MaxTextureDimension1D &&
		l.MaxTextureDimension2D >= req.MaxTextureDimension2D &&
		l.MaxTextureDimension3D >= req.MaxTextureDimension3D &&
		l.MaxTextureArrayLayers >= req.MaxTextureArrayLayers &&
		l.MaxBindGroups >= req.MaxBindGroups &&
		l.MaxBufferSize >= req.MaxBufferSize &&
		l.MaxUniformBufferBindingSize >= req.MaxUniformBufferBindingSize &&
		l.MaxStorageBufferBindingSize >= req.MaxStorageBufferBindingSize &&
		l.MaxVertexBuffers >= req.MaxVertexBuffers &&
		l.MaxVertexAttributes >= req.MaxVertexAttributes &&
		l.MaxComputeWorkgroupStorageSize >= req.MaxComputeWorkgroupStorageSize &&
		l.MaxComputeInvocationsPerWorkgroup >= req.MaxComputeInvocationsPerWorkgroup &&
		l.MaxComputeWorkgroupSizeX >= req.MaxComputeWorkgroupSizeX &&
		l.MaxComputeWorkgroupSizeY >= req.MaxComputeWorkgroupSizeY &&
		l.MaxComputeWorkgroupSizeZ >= req.MaxComputeWorkgroupSizeZ &&
		l.MaxComputeWorkgroupsPerDimension >= req.MaxComputeWorkgroupsPerDimension
}
