package backend

import (
	"sync"

	"github.com/gogpu/gpudev"
)

// PowerPreference biases adapter selection in RequestAdapter.
type PowerPreference uint32

const (
	// PowerPreferenceUndefined leaves the choice to the instance.
	PowerPreferenceUndefined PowerPreference = iota

	// PowerPreferenceLowPower prefers integrated or CPU adapters.
	PowerPreferenceLowPower

	// PowerPreferenceHighPerformance prefers discrete adapters.
	PowerPreferenceHighPerformance
)

// String returns the canonical name of the power preference.
func (p PowerPreference) String() string {
	switch p {
	case PowerPreferenceLowPower:
		return "Low Power"
	case PowerPreferenceHighPerformance:
		return "High Performance"
	default:
		return "Undefined"
	}
}

// AdapterOptions controls adapter selection in RequestAdapter.
type AdapterOptions struct {
	// PowerPreference biases the choice between discrete and
	// integrated/CPU adapters.
	PowerPreference PowerPreference

	// ForceFallback restricts the choice to software fallback adapters.
	ForceFallback bool
}

// Instance discovers adapters across every registered driver and owns
// their invalidation. The instance tracks each adapter it vends so that
// InvalidateAdapters (or Close) can withdraw them all at once; in-flight
// device requests are allowed to complete, only new ones are refused.
//
// Instance is safe for concurrent use.
type Instance struct {
	mu     sync.Mutex
	vended []*gpudev.Adapter
	closed bool
}

// NewInstance creates a new enumeration instance.
func NewInstance() *Instance {
	return &Instance{}
}

// EnumerateAdapters discovers the currently usable adapters across all
// registered drivers, in priority order, with fallback adapters sorted
// last. Each call returns fresh Adapter values, independently
// reference-counted even when they alias the same physical hardware; the
// caller owns one reference on each and releases adapters it does not
// keep. A closed instance returns nil.
func (in *Instance) EnumerateAdapters() []*gpudev.Adapter {
	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return nil
	}
	in.mu.Unlock()

	var native, fallback []*gpudev.Adapter
	for _, name := range ordered() {
		d := Get(name)
		if d == nil {
			continue
		}
		adapters, err := d.Enumerate()
		if err != nil {
			gpudev.Logger().Warn("backend: driver enumeration failed",
				"driver", name, "error", err)
			continue
		}
		for _, a := range adapters {
			if a.Fallback() {
				fallback = append(fallback, a)
			} else {
				native = append(native, a)
			}
		}
	}

	all := append(native, fallback...)

	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		// Closed while enumerating: withdraw immediately.
		for _, a := range all {
			a.Invalidate()
		}
	}
	in.vended = append(in.vended, all...)

	gpudev.Logger().Info("backend: adapters enumerated", "count", len(all))
	return all
}

// RequestAdapter enumerates and returns the single adapter best matching
// opts, releasing the rest. A nil opts selects the highest-priority
// non-fallback adapter when one exists.
func (in *Instance) RequestAdapter(opts *AdapterOptions) (*gpudev.Adapter, error) {
	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return nil, ErrInstanceClosed
	}
	in.mu.Unlock()

	adapters := in.EnumerateAdapters()
	if len(adapters) == 0 {
		return nil, ErrNoAdapter
	}

	var o AdapterOptions
	if opts != nil {
		o = *opts
	}

	selected := selectAdapter(adapters, o)
	for _, a := range adapters {
		if a != selected {
			a.Release()
		}
	}
	if selected == nil {
		return nil, ErrNoAdapter
	}

	props := selected.Properties()
	gpudev.Logger().Info("backend: adapter selected",
		"name", props.Name, "backend", props.BackendType.String(),
		"type", props.AdapterType.String())
	return selected, nil
}

// selectAdapter picks the best match; adapters arrive priority-ordered
// with fallbacks last, so the first acceptable candidate wins.
func selectAdapter(adapters []*gpudev.Adapter, o AdapterOptions) *gpudev.Adapter {
	if o.ForceFallback {
		for _, a := range adapters {
			if a.Fallback() {
				return a
			}
		}
		return nil
	}

	var want gpudev.AdapterType
	switch o.PowerPreference {
	case PowerPreferenceHighPerformance:
		want = gpudev.AdapterTypeDiscreteGPU
	case PowerPreferenceLowPower:
		want = gpudev.AdapterTypeIntegratedGPU
	default:
		return adapters[0]
	}

	for _, a := range adapters {
		if a.Properties().AdapterType == want {
			return a
		}
	}
	return adapters[0]
}

// InvalidateAdapters marks every adapter this instance has vended stale.
// Stale adapters keep reporting their last-known capabilities but refuse
// new device requests; requests already in flight complete on
// pre-invalidation state. Invalidation is not reversible.
func (in *Instance) InvalidateAdapters() {
	in.mu.Lock()
	vended := in.vended
	in.mu.Unlock()

	for _, a := range vended {
		a.Invalidate()
	}
	gpudev.Logger().Info("backend: adapters invalidated", "count", len(vended))
}

// Close invalidates every vended adapter and shuts the instance down.
// Further enumeration returns nothing. Close does not release adapter
// references held by callers.
func (in *Instance) Close() {
	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return
	}
	in.closed = true
	in.mu.Unlock()

	in.InvalidateAdapters()
}
