package artifact

import (
	"fmt"
	"strings"
)

// Coordinate is one dependency declaration handed to the host build system.
type Coordinate struct {
	Group      string `yaml:"group" json:"group"`
	Artifact   string `yaml:"artifact" json:"artifact"`
	Version    string `yaml:"version" json:"version"`
	Classifier string `yaml:"classifier,omitempty" json:"classifier,omitempty"`
	Scope      Scope  `yaml:"scope" json:"scope"`
}

// String renders the coordinate in group:artifact:version[:classifier] notation.
func (c Coordinate) String() string {
	s := c.Group + ":" + c.Artifact + ":" + c.Version
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}

// Scope is the dependency scope a coordinate is declared in.
type Scope string

const (
	ScopeCompile     Scope = "compile"
	ScopeRuntime     Scope = "runtime"
	ScopeTestCompile Scope = "test-compile"
	ScopeTestRuntime Scope = "test-runtime"
)

// CompileScope returns the scope for primary artifacts.
func CompileScope(test bool) Scope {
	if test {
		return ScopeTestCompile
	}
	return ScopeCompile
}

// RuntimeScope returns the scope for native artifacts.
func RuntimeScope(test bool) Scope {
	if test {
		return ScopeTestRuntime
	}
	return ScopeRuntime
}

// IsTest reports whether the scope belongs to the test classpath.
func (s Scope) IsTest() bool {
	return s == ScopeTestCompile || s == ScopeTestRuntime
}

// GradleConfiguration maps the scope to a Gradle configuration name.
func (s Scope) GradleConfiguration() string {
	switch s {
	case ScopeRuntime:
		return "runtimeOnly"
	case ScopeTestCompile:
		return "testImplementation"
	case ScopeTestRuntime:
		return "testRuntimeOnly"
	default:
		return "implementation"
	}
}

// MavenScope maps the scope to a Maven <scope> value.
func (s Scope) MavenScope() string {
	switch s {
	case ScopeRuntime:
		return "runtime"
	case ScopeTestCompile, ScopeTestRuntime:
		return "test"
	default:
		return "compile"
	}
}

// MalformedCoordinateError is returned by ParseCoordinate.
type MalformedCoordinateError struct {
	Input string
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("malformed coordinate %q: want group:artifact:version[:classifier]", e.Input)
}

// ParseCoordinate parses group:artifact:version[:classifier]. The returned
// coordinate has no scope.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, &MalformedCoordinateError{Input: s}
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, &MalformedCoordinateError{Input: s}
		}
	}

	c := Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}
