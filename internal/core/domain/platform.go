package domain

// Architecture identifies a CPU architecture a plugin supports.
type Architecture string

// Architectures accepted by the descriptor schema.
const (
	// ArchitectureX64 is 64-bit x86.
	ArchitectureX64 Architecture = "x64"

	// ArchitectureAarch64 is 64-bit ARM.
	ArchitectureAarch64 Architecture = "aarch64"
)

// IsValid returns true if the architecture is recognised.
func (a Architecture) IsValid() bool {
	switch a {
	case ArchitectureX64, ArchitectureAarch64:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a Architecture) String() string {
	return string(a)
}

// AllArchitectures returns every architecture the schema accepts,
// in sorted order.
func AllArchitectures() []Architecture {
	return []Architecture{
		ArchitectureAarch64,
		ArchitectureX64,
	}
}

// OperatingSystem identifies an operating system a plugin supports.
type OperatingSystem string

// Operating systems accepted by the descriptor schema.
const (
	// OSWindows is Microsoft Windows.
	OSWindows OperatingSystem = "Windows"

	// OSLinux is Linux.
	OSLinux OperatingSystem = "Linux"
)

// IsValid returns true if the operating system is recognised.
func (o OperatingSystem) IsValid() bool {
	switch o {
	case OSWindows, OSLinux:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o OperatingSystem) String() string {
	return string(o)
}

// AllOperatingSystems returns every operating system the schema accepts,
// in sorted order.
func AllOperatingSystems() []OperatingSystem {
	return []OperatingSystem{
		OSLinux,
		OSWindows,
	}
}
