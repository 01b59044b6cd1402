package gpudev

// Handle is an opaque reference to a backend-owned object. Only the Binding
// that produced a handle knows how to operate on it.
type Handle any

// Binding is the fixed set of operations a backend implementation supplies
// to drive the adapters and devices it produces. Exactly one Binding value
// exists per backend; every adapter and device from that backend shares it
// by reference. A Binding must never be mutated after registration.
//
// Reference and Release must be safe to call concurrently from callers
// holding independent adapter or device values that alias the same backend
// object. Release is the only path that may deallocate backend resources;
// it frees the object when the count reaches zero. Calling Release more
// times than matching Reference calls is a caller contract violation with
// undefined behavior.
type Binding interface {
	// Backend identifies the implementation behind this binding.
	Backend() BackendType

	// Reference increments the reference count of the backend object
	// behind h.
	Reference(h Handle)

	// Release decrements the reference count of the backend object behind
	// h, destroying it when the count reaches zero.
	Release(h Handle)

	// RequestDevice opens a device on the adapter object behind h.
	// The descriptor is never nil and its RequiredLimits are resolved.
	// The call may block on native driver work; it is invoked from a
	// context that tolerates blocking. Exactly one of the outcome's
	// fields must be populated.
	RequestDevice(h Handle, desc *DeviceDescriptor) DeviceOutcome

	// RequestFrameSize returns the size in bytes of the per-request
	// execution frame the protocol allocates before invoking
	// RequestDevice. Bindings with no scratch requirement return 0.
	RequestFrameSize() int
}
