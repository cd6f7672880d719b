// Package cpu reports the CPU features of the running process.
//
// algocomplex itself has no architecture-specific code. The report exists so
// that benchmark output can be compared across machines: whether the
// hardware has FMA, for instance, decides whether the compiler may fuse the
// multiply-adds in Mul and Div on that platform.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the detected CPU capabilities.
type Features struct {
	HasSSE2      bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasFMA:       cpu.X86.HasFMA || runtime.GOARCH == "arm64",
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// FusesMultiplyAdd reports whether the Go compiler may contract x*y+z into a
// single fused instruction on this architecture at its default GOARCH level.
func (f Features) FusesMultiplyAdd() bool {
	switch f.Architecture {
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	default:
		return false
	}
}

// Flags returns the names of the set feature flags in a fixed order.
func (f Features) Flags() []string {
	var flags []string

	for _, flag := range []struct {
		name string
		set  bool
	}{
		{"sse2", f.HasSSE2},
		{"sse4.1", f.HasSSE41},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"fma", f.HasFMA},
		{"neon", f.HasNEON},
	} {
		if flag.set {
			flags = append(flags, flag.name)
		}
	}

	return flags
}

// String returns "<arch> [flag flag ...]", or "<arch> generic" when no flag is set.
func (f Features) String() string {
	flags := f.Flags()
	if len(flags) == 0 {
		return f.Architecture + " generic"
	}

	return f.Architecture + " " + strings.Join(flags, " ")
}
