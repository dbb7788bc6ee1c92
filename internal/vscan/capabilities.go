package vscan

import "golang.org/x/sys/cpu"

// Capabilities reports the SIMD features detected on the running CPU. It is
// informational only — ScanVector's mask generation does not dispatch on
// it, since no verified vectorised kernel for this engine is available to
// wire in; see DESIGN.md.
type Capabilities struct {
	AVX2  bool
	SSE42 bool
}

// DetectCapabilities inspects the running CPU via golang.org/x/sys/cpu.
// On non-x86 platforms the reported capabilities are simply false.
func DetectCapabilities() Capabilities {
	return Capabilities{
		AVX2:  cpu.X86.HasAVX2,
		SSE42: cpu.X86.HasSSE42,
	}
}
