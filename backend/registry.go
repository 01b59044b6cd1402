package backend

import (
	"sync"

	"github.com/gogpu/gpudev"
)

// Driver name constants.
const (
	// DriverVulkan is the name of the native Vulkan driver (gogpu/wgpu hal).
	DriverVulkan = "vulkan"
	// DriverWebGPU is the name of the gogpu framework driver.
	DriverWebGPU = "webgpu"
	// DriverNull is the name of the CPU software fallback driver.
	DriverNull = "null"
)

// Driver discovers adapters for one concrete GPU implementation.
type Driver interface {
	// Name returns the driver identifier (e.g., "vulkan", "null").
	Name() string

	// Backend identifies the implementation the driver vends adapters for.
	Backend() gpudev.BackendType

	// Enumerate discovers the currently usable adapters. Each call
	// returns fresh, independently reference-counted Adapter values;
	// the caller owns one reference on each.
	Enumerate() ([]*gpudev.Adapter, error)
}

// DriverFactory creates a new driver instance.
type DriverFactory func() Driver

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]DriverFactory)
	// Priority order for driver selection (first available wins).
	// Native drivers beat the software fallback.
	driverPriority = []string{DriverVulkan, DriverWebGPU, DriverNull}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it is replaced.
func Register(name string, factory DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns a list of registered driver names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Get returns a driver instance by name.
// Returns nil if the driver is not registered.
func Get(name string) Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available driver based on priority.
// Returns nil if no drivers are registered.
func Default() Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range driverPriority {
		if factory, ok := drivers[name]; ok {
			if d := factory(); d != nil {
				return d
			}
		}
	}

	// Fallback: return first available
	for _, factory := range drivers {
		if d := factory(); d != nil {
			return d
		}
	}

	return nil
}

// MustDefault returns the default driver or panics.
func MustDefault() Driver {
	d := Default()
	if d == nil {
		panic("backend: no driver available")
	}
	return d
}

// ordered returns the registered driver names in priority order, followed
// by any remaining registered drivers.
func ordered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	seen := make(map[string]bool, len(drivers))
	for _, name := range driverPriority {
		if _, ok := drivers[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	for name := range drivers {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}
