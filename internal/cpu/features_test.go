package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()

	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	// amd64 guarantees SSE2.
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 without SSE2")
	}

	if runtime.GOARCH != "arm64" && f.HasNEON {
		t.Error("NEON reported on non-arm64")
	}
}

func TestFeaturesString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Features
		want string
	}{
		{"generic", Features{Architecture: "wasm"}, "wasm generic"},
		{"x86", Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true, HasFMA: true}, "amd64 sse2 avx2 fma"},
		{"arm", Features{Architecture: "arm64", HasNEON: true, HasFMA: true}, "arm64 fma neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.f.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFusesMultiplyAdd(t *testing.T) {
	t.Parallel()

	if (Features{Architecture: "amd64", HasFMA: true}).FusesMultiplyAdd() {
		t.Error("amd64 should not fuse by default")
	}

	if !(Features{Architecture: "arm64"}).FusesMultiplyAdd() {
		t.Error("arm64 fuses")
	}

	if got := DetectFeatures().String(); !strings.HasPrefix(got, runtime.GOARCH+" ") {
		t.Errorf("String() = %q, want %q prefix", got, runtime.GOARCH)
	}
}
