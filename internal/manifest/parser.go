package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LWJGL/lwjgl3-gradle/internal/resolver"
)

// DefaultPath is the manifest file name looked up by the CLI.
const DefaultPath = "lwjgl.yaml"

// Phase lists what to put on one classpath.
type Phase struct {
	Preset  string   `yaml:"preset"`
	Modules []string `yaml:"modules"`
	Addons  []string `yaml:"addons"`
}

// IsEmpty reports whether the phase requests nothing.
func (p Phase) IsEmpty() bool {
	return p.Preset == "" && len(p.Modules) == 0 && len(p.Addons) == 0
}

// Manifest is the parsed content of an lwjgl.yaml file.
type Manifest struct {
	Version            string `yaml:"version"`
	Group              string `yaml:"group"`
	AllNatives         bool   `yaml:"allNatives"`
	Natives            string `yaml:"natives"`
	Implementation     Phase  `yaml:"implementation"`
	TestImplementation Phase  `yaml:"testImplementation"`
}

// Parse reads and decodes a manifest file.
func Parse(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode decodes a manifest, rejecting unknown keys.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}

// Requests returns one request per non-empty phase, main classpath first.
func (m *Manifest) Requests() []resolver.Request {
	var reqs []resolver.Request
	if !m.Implementation.IsEmpty() {
		reqs = append(reqs, m.Implementation.request(false))
	}
	if !m.TestImplementation.IsEmpty() {
		reqs = append(reqs, m.TestImplementation.request(true))
	}
	return reqs
}

func (p Phase) request(test bool) resolver.Request {
	return resolver.Request{
		Preset:  p.Preset,
		Modules: p.Modules,
		Addons:  p.Addons,
		Test:    test,
	}
}

// Apply copies the manifest settings that are present onto b.
func (m *Manifest) Apply(b *resolver.Builder) *resolver.Builder {
	if m.Version != "" {
		b.Version(m.Version)
	}
	if m.Group != "" {
		b.Group(m.Group)
	}
	if m.AllNatives {
		b.AllNatives(true)
	}
	if m.Natives != "" {
		b.Natives(m.Natives)
	}
	return b
}
