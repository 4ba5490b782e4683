package emitter

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LWJGL/lwjgl3-gradle/internal/artifact"
)

// Format selects the dependency notation to write.
type Format string

const (
	FormatKotlin Format = "kotlin" // Gradle Kotlin DSL
	FormatGroovy Format = "groovy" // Gradle Groovy DSL
	FormatMaven  Format = "maven"  // POM <dependency> elements
	FormatCoords Format = "coords"
	FormatYAML   Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatKotlin, FormatGroovy, FormatMaven, FormatCoords, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Emitter writes coordinates in one notation.
type Emitter struct {
	w      io.Writer
	format Format
}

// NewEmitter creates a new emitter.
func NewEmitter(w io.Writer, format Format) *Emitter {
	return &Emitter{w: w, format: format}
}

// Emit writes coords in the order given.
func (e *Emitter) Emit(coords []artifact.Coordinate) error {
	switch e.format {
	case FormatYAML:
		return e.emitYAML(coords)
	case FormatMaven:
		return e.emitMaven(coords)
	}

	for _, c := range coords {
		var err error
		switch e.format {
		case FormatKotlin:
			_, err = fmt.Fprintf(e.w, "%s(\"%s\")\n", c.Scope.GradleConfiguration(), c)
		case FormatGroovy:
			_, err = fmt.Fprintf(e.w, "%s '%s'\n", c.Scope.GradleConfiguration(), c)
		case FormatCoords:
			_, err = fmt.Fprintf(e.w, "%s %s\n", c.Scope, c)
		default:
			return fmt.Errorf("unknown output format %q", e.format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitMaven(coords []artifact.Coordinate) error {
	for _, c := range coords {
		if _, err := fmt.Fprint(e.w, "<dependency>\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(e.w, "  <groupId>%s</groupId>\n", xmlText(c.Group)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(e.w, "  <artifactId>%s</artifactId>\n", xmlText(c.Artifact)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(e.w, "  <version>%s</version>\n", xmlText(c.Version)); err != nil {
			return err
		}
		if c.Classifier != "" {
			if _, err := fmt.Fprintf(e.w, "  <classifier>%s</classifier>\n", xmlText(c.Classifier)); err != nil {
				return err
			}
		}
		// compile is Maven's default scope
		if s := c.Scope.MavenScope(); s != "compile" {
			if _, err := fmt.Fprintf(e.w, "  <scope>%s</scope>\n", s); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(e.w, "</dependency>\n"); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitYAML(coords []artifact.Coordinate) error {
	if coords == nil {
		coords = []artifact.Coordinate{}
	}
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]artifact.Coordinate{"dependencies": coords}); err != nil {
		return err
	}
	return enc.Close()
}

func xmlText(s string) string {
	var b strings.Builder
	// strings.Builder writes never fail
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
