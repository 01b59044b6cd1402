package gpudev

import "testing"

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	if l.MaxTextureDimension2D != 8192 {
		t.Errorf("MaxTextureDimension2D = %d, want 8192", l.MaxTextureDimension2D)
	}
	if l.MaxBufferSize != 256*1024*1024 {
		t.Errorf("MaxBufferSize = %d, want 256 MiB", l.MaxBufferSize)
	}
	if l.MaxBindGroups != 4 {
		t.Errorf("MaxBindGroups = %d, want 4", l.MaxBindGroups)
	}
	if l.MaxComputeWorkgroupsPerDimension != 65535 {
		t.Errorf("MaxComputeWorkgroupsPerDimension = %d, want 65535", l.MaxComputeWorkgroupsPerDimension)
	}
}

func TestLimitsCovers(t *testing.T) {
	base := DefaultLimits()

	if !base.Covers(base) {
		t.Error("limits do not cover themselves")
	}

	smaller := base
	smaller.MaxVertexAttributes = 8
	if !base.Covers(smaller) {
		t.Error("baseline does not cover a strictly smaller request")
	}

	bigger := base
	bigger.MaxStorageBufferBindingSize = base.MaxStorageBufferBindingSize + 1
	if base.Covers(bigger) {
		t.Error("baseline covers a request exceeding one field")
	}
}
