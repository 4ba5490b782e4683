package resolver

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/LWJGL/lwjgl3-gradle/internal/artifact"
	"github.com/LWJGL/lwjgl3-gradle/internal/catalog"
	"github.com/LWJGL/lwjgl3-gradle/internal/platform"
)

// Request names the modules to resolve for one classpath.
type Request struct {
	Preset  string
	Modules []string
	Addons  []string
	Test    bool // declare on the test classpath
}

// Resolver turns requests into dependency coordinates.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	cfg    Config
	logger *log.Logger
}

// NewResolver creates a resolver. A nil logger discards output.
func NewResolver(cfg Config, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{cfg: cfg, logger: logger}
}

// Config returns the configuration the resolver was built with.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve returns the coordinates for req. Core is always included first.
// Modules newer than the configured version are skipped. Any lookup or
// classifier failure aborts the whole call.
func (r *Resolver) Resolve(req Request) ([]artifact.Coordinate, error) {
	if err := checkCatalog(r.cfg.version); err != nil {
		return nil, err
	}
	mods, err := r.expand(req)
	if err != nil {
		return nil, err
	}

	var coords []artifact.Coordinate
	for _, m := range mods {
		if !m.AvailableIn(r.cfg.version) {
			r.logger.Debug("skipping module", "module", m.Name, "since", m.Since, "version", r.cfg.version)
			continue
		}
		cs, err := r.resolveModule(m, req.Test)
		if err != nil {
			return nil, err
		}
		coords = append(coords, cs...)
	}

	seen := make(map[string]bool, len(req.Addons))
	for _, name := range req.Addons {
		if seen[name] {
			continue
		}
		seen[name] = true
		c, err := r.resolveAddon(name, req.Test)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}

	return coords, nil
}

// ResolveAll resolves several requests and concatenates the results in order.
func (r *Resolver) ResolveAll(reqs []Request) ([]artifact.Coordinate, error) {
	var all []artifact.Coordinate
	for _, req := range reqs {
		coords, err := r.Resolve(req)
		if err != nil {
			return nil, err
		}
		all = append(all, coords...)
	}
	return all, nil
}

// expand turns the preset and module names into a unique module list with
// core at the front.
func (r *Resolver) expand(req Request) ([]catalog.Module, error) {
	var names []string
	if req.Preset != "" {
		p, err := catalog.LookupPreset(req.Preset)
		if err != nil {
			return nil, err
		}
		names = append(names, p.Modules...)
	}
	names = append(names, req.Modules...)

	seen := make(map[string]bool, len(names)+1)
	unique := make([]string, 0, len(names)+1)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	if !seen[catalog.Core] {
		r.logger.Debug("adding core module")
		unique = append([]string{catalog.Core}, unique...)
	}

	return catalog.LookupAll(unique)
}

func (r *Resolver) resolveModule(m catalog.Module, test bool) ([]artifact.Coordinate, error) {
	coords := []artifact.Coordinate{{
		Group:    r.cfg.group,
		Artifact: m.Artifact(),
		Version:  r.cfg.version.String(),
		Scope:    artifact.CompileScope(test),
	}}
	if !m.Native {
		return coords, nil
	}

	var classifiers []string
	if r.cfg.allNatives {
		classifiers = platform.AllClassifiers()
	} else {
		c, err := r.cfg.Classifier()
		if err != nil {
			return nil, fmt.Errorf("resolving natives for %s: %w", m.Name, err)
		}
		classifiers = []string{c}
	}

	for _, c := range classifiers {
		coords = append(coords, artifact.Coordinate{
			Group:      r.cfg.group,
			Artifact:   m.Artifact(),
			Version:    r.cfg.version.String(),
			Classifier: c,
			Scope:      artifact.RuntimeScope(test),
		})
	}
	r.logger.Debug("resolved natives", "module", m.Name, "classifiers", len(classifiers))
	return coords, nil
}

func (r *Resolver) resolveAddon(name string, test bool) (artifact.Coordinate, error) {
	a, err := catalog.LookupAddon(name)
	if err != nil {
		return artifact.Coordinate{}, err
	}
	c, err := artifact.ParseCoordinate(a.Coordinate)
	if err != nil {
		return artifact.Coordinate{}, fmt.Errorf("addon %s: %w", name, err)
	}
	c.Scope = artifact.CompileScope(test)
	return c, nil
}
