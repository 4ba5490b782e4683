package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// OS is an already-categorized operating system family.
type OS string

const (
	Unknown OS = ""
	Linux   OS = "linux"
	MacOS   OS = "macos"
	Windows OS = "windows"
)

// ClassifierPrefix is prepended to every native classifier.
const ClassifierPrefix = "natives-"

// All lists every platform tag that ships native binaries, in emission order.
var All = []string{
	"linux-arm64", "linux-arm32", "linux",
	"macos-arm64", "macos",
	"windows-arm64", "windows", "windows-x86",
}

// UnsupportedPlatformError is returned when no classifier exists for a host.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unrecognized or unsupported operating system %q (arch %q): set the natives classifier manually", e.OS, e.Arch)
}

// ParseOS categorizes a host OS name (GOOS or os.name style).
func ParseOS(name string) OS {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case n == "linux":
		return Linux
	case n == "darwin", n == "macos", strings.HasPrefix(n, "mac os"):
		return MacOS
	case strings.HasPrefix(n, "windows"):
		return Windows
	default:
		return Unknown
	}
}

// Classify maps an OS and a JVM-style architecture name to a native classifier
// such as "natives-linux-arm64".
func Classify(os OS, arch string) (string, error) {
	aarch64 := strings.HasPrefix(arch, "aarch64")

	var tag string
	switch os {
	case Linux:
		tag = "linux"
		if strings.HasPrefix(arch, "arm") || aarch64 {
			if strings.Contains(arch, "64") || strings.HasPrefix(arch, "armv8") {
				tag += "-arm64"
			} else {
				tag += "-arm32"
			}
		}
	case MacOS:
		tag = "macos"
		if aarch64 {
			tag += "-arm64"
		}
	case Windows:
		tag = "windows"
		if strings.Contains(arch, "64") {
			if aarch64 {
				tag += "-arm64"
			}
		} else {
			tag += "-x86"
		}
	default:
		return "", &UnsupportedPlatformError{OS: string(os), Arch: arch}
	}

	return ClassifierPrefix + tag, nil
}

// AllClassifiers returns every entry of All with the natives prefix.
func AllClassifiers() []string {
	out := make([]string, len(All))
	for i, tag := range All {
		out[i] = ClassifierPrefix + tag
	}
	return out
}

// Host returns the running OS and its architecture in JVM os.arch notation.
func Host() (OS, string) {
	os := ParseOS(runtime.GOOS)
	if os == Unknown {
		// Keep the raw name so the error can report it.
		os = OS(runtime.GOOS)
	}
	return os, JVMArch(runtime.GOARCH)
}

// DetectClassifier classifies the running host.
func DetectClassifier() (string, error) {
	return Classify(Host())
}

// JVMArch translates a GOARCH value to the name a JVM reports in os.arch.
func JVMArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "amd64"
	case "386":
		return "x86"
	case "arm64":
		return "aarch64"
	case "arm":
		return "arm"
	default:
		return goarch
	}
}
