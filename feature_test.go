package gpudev

import "testing"

func TestFeatureString(t *testing.T) {
	cases := []struct {
		f    Feature
		want string
	}{
		{FeatureDepthClipControl, "depth-clip-control"},
		{FeatureShaderF16, "shader-f16"},
		{FeatureTextureCompressionASTC, "texture-compression-astc"},
		{Feature(999), "unknown"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Errorf("Feature(%d).String() = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestCloneFeatures(t *testing.T) {
	if cloneFeatures(nil) != nil {
		t.Error("cloneFeatures(nil) != nil")
	}
	if cloneFeatures([]Feature{}) != nil {
		t.Error("cloneFeatures(empty) != nil")
	}

	src := []Feature{FeatureShaderF16, FeatureTimestampQuery, FeatureShaderF16}
	got := cloneFeatures(src)
	if len(got) != 2 {
		t.Fatalf("cloneFeatures kept duplicates: %v", got)
	}
	if got[0] != FeatureShaderF16 || got[1] != FeatureTimestampQuery {
		t.Errorf("cloneFeatures reordered: %v", got)
	}
	got[0] = FeatureDepthClipControl
	if src[0] != FeatureShaderF16 {
		t.Error("cloneFeatures aliased the source slice")
	}
}

func TestContainsFeature(t *testing.T) {
	set := []Feature{FeatureShaderF16, FeatureTimestampQuery}
	if !containsFeature(set, FeatureTimestampQuery) {
		t.Error("containsFeature missed a present feature")
	}
	if containsFeature(set, FeatureTextureCompressionBC) {
		t.Error("containsFeature found an absent feature")
	}
	if containsFeature(nil, FeatureShaderF16) {
		t.Error("containsFeature found a feature in a nil set")
	}
}
