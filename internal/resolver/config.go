package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LWJGL/lwjgl3-gradle/internal/catalog"
	"github.com/LWJGL/lwjgl3-gradle/internal/platform"
	"github.com/LWJGL/lwjgl3-gradle/internal/version"
)

// DefaultGroup is the Maven group of every LWJGL module.
const DefaultGroup = "org.lwjgl"

var (
	// ErrPredatesCatalog is returned for versions older than the core module.
	ErrPredatesCatalog = errors.New("version predates the module catalog")
	// ErrInvalidClassifier is returned for natives overrides without the natives- prefix.
	ErrInvalidClassifier = errors.New("invalid natives classifier")
)

// Config is the frozen resolver configuration. Build it with a Builder.
type Config struct {
	version    version.Version
	group      string
	allNatives bool
	natives    string // explicit classifier override
	host       string // classifier detected at build time
	hostErr    error
}

func (c Config) Version() version.Version { return c.version }
func (c Config) Group() string { return c.group }
func (c Config) AllNatives() bool { return c.allNatives }

// Classifier returns the classifier used for single-platform natives.
// An override wins over the detected host classifier.
func (c Config) Classifier() (string, error) {
	if c.natives != "" {
		return c.natives, nil
	}
	if c.hostErr != nil {
		return "", c.hostErr
	}
	return c.host, nil
}

// Builder collects settings and yields an immutable Config.
type Builder struct {
	rawVersion string
	group      string
	allNatives bool
	natives    string
	hostOS     platform.OS
	hostArch   string
	hostSet    bool
}

// NewBuilder returns a builder with the default group and version.
func NewBuilder() *Builder {
	return &Builder{
		rawVersion: version.Default,
		group:      DefaultGroup,
	}
}

// Version selects a release ("3.3.2") or snapshot ("3.3.3-SNAPSHOT").
func (b *Builder) Version(raw string) *Builder {
	b.rawVersion = raw
	return b
}

func (b *Builder) Group(group string) *Builder {
	b.group = group
	return b
}

// AllNatives requests natives for every supported platform.
func (b *Builder) AllNatives(all bool) *Builder {
	b.allNatives = all
	return b
}

// Natives overrides the detected classifier, e.g. "natives-linux-arm64".
func (b *Builder) Natives(classifier string) *Builder {
	b.natives = classifier
	return b
}

// Host replaces the running host with the given OS and JVM-style arch.
func (b *Builder) Host(os platform.OS, arch string) *Builder {
	b.hostOS = os
	b.hostArch = arch
	b.hostSet = true
	return b
}

// Build validates the settings and detects the host classifier once.
// An unsupported host is not an error here; it is reported when a native
// module needs the classifier.
func (b *Builder) Build() (Config, error) {
	v, err := version.Parse(b.rawVersion)
	if err != nil {
		return Config{}, fmt.Errorf("selecting version: %w", err)
	}
	if err := checkCatalog(v); err != nil {
		return Config{}, fmt.Errorf("selecting version: %w", err)
	}
	if b.group == "" {
		return Config{}, fmt.Errorf("group must not be empty")
	}
	if b.natives != "" && !strings.HasPrefix(b.natives, platform.ClassifierPrefix) {
		return Config{}, fmt.Errorf("%w %q: want %s<platform>, e.g. %s", ErrInvalidClassifier, b.natives, platform.ClassifierPrefix, platform.AllClassifiers()[2])
	}

	cfg := Config{
		version:    v,
		group:      b.group,
		allNatives: b.allNatives,
		natives:    b.natives,
	}

	if !b.allNatives && b.natives == "" {
		os, arch := b.hostOS, b.hostArch
		if !b.hostSet {
			os, arch = platform.Host()
		}
		cfg.host, cfg.hostErr = platform.Classify(os, arch)
	}

	return cfg, nil
}

// checkCatalog fails when v is older than the core module.
func checkCatalog(v version.Version) error {
	core, err := catalog.Lookup(catalog.Core)
	if err != nil {
		return err
	}
	if !core.AvailableIn(v) {
		return fmt.Errorf("%w: %q is older than core (since %s)", ErrPredatesCatalog, v, core.Since)
	}
	return nil
}
