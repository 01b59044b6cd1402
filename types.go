package gpudev

// AdapterType classifies the hardware behind an adapter.
type AdapterType uint32

const (
	// AdapterTypeDiscreteGPU is a dedicated GPU with its own memory.
	AdapterTypeDiscreteGPU AdapterType = iota

	// AdapterTypeIntegratedGPU is a GPU sharing memory with the CPU.
	AdapterTypeIntegratedGPU

	// AdapterTypeCPU is a software implementation running on the CPU.
	AdapterTypeCPU

	// AdapterTypeUnknown is reported when the backend cannot classify
	// the hardware.
	AdapterTypeUnknown
)

// String returns the canonical human-readable name of the adapter type.
func (t AdapterType) String() string {
	switch t {
	case AdapterTypeDiscreteGPU:
		return "Discrete GPU"
	case AdapterTypeIntegratedGPU:
		return "Integrated GPU"
	case AdapterTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// BackendType identifies the concrete GPU implementation an adapter or
// device is bound to.
type BackendType uint32

const (
	// BackendTypeNull is the software/no-op backend.
	BackendTypeNull BackendType = iota

	// BackendTypeWebGPU is a WebGPU-style framework backend.
	BackendTypeWebGPU

	// BackendTypeD3D11 is Direct3D 11.
	BackendTypeD3D11

	// BackendTypeD3D12 is Direct3D 12.
	BackendTypeD3D12

	// BackendTypeMetal is Apple Metal.
	BackendTypeMetal

	// BackendTypeVulkan is Vulkan.
	BackendTypeVulkan

	// BackendTypeOpenGL is desktop OpenGL.
	BackendTypeOpenGL

	// BackendTypeOpenGLES is OpenGL ES.
	BackendTypeOpenGLES
)

// String returns the canonical human-readable name of the backend type.
func (t BackendType) String() string {
	switch t {
	case BackendTypeNull:
		return "Null"
	case BackendTypeWebGPU:
		return "WebGPU"
	case BackendTypeD3D11:
		return "D3D11"
	case BackendTypeD3D12:
		return "D3D12"
	case BackendTypeMetal:
		return "Metal"
	case BackendTypeVulkan:
		return "Vulkan"
	case BackendTypeOpenGL:
		return "OpenGL"
	case BackendTypeOpenGLES:
		return "OpenGL ES"
	default:
		return "Unknown"
	}
}
