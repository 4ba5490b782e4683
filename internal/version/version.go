package version

import (
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// SnapshotSuffix marks in-development builds, e.g. "3.3.3-SNAPSHOT".
const SnapshotSuffix = "-SNAPSHOT"

// Channel is the release channel a version belongs to.
type Channel string

const (
	ChannelRelease  Channel = "release"
	ChannelSnapshot Channel = "snapshot"
)

// MalformedVersionError is returned for strings that are not major.minor.patch.
type MalformedVersionError struct {
	Version string
	Err     error
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q: %v", e.Version, e.Err)
}

func (e *MalformedVersionError) Unwrap() error { return e.Err }

// Version is a parsed LWJGL version.
type Version struct {
	raw     string
	ordinal int
	channel Channel
}

// MaxComponent is the largest accepted major, minor or patch number.
const MaxComponent = 9999

// Ordinal converts a dotted version into a comparable integer.
//
// The weighting is major*100 + minor*10 + patch, so it only orders versions
// whose components are single digits. "3.10.0" collides with "4.0.0".
// Components above MaxComponent are rejected.
func Ordinal(raw string) (int, error) {
	v, err := mm.StrictNewVersion(raw)
	if err != nil {
		return 0, &MalformedVersionError{Version: raw, Err: err}
	}
	if v.Major() > MaxComponent || v.Minor() > MaxComponent || v.Patch() > MaxComponent {
		return 0, &MalformedVersionError{Version: raw, Err: fmt.Errorf("component exceeds %d", MaxComponent)}
	}
	return int(v.Major()*100 + v.Minor()*10 + v.Patch()), nil
}

// Parse parses a release ("3.3.2") or snapshot ("3.3.3-SNAPSHOT") version.
func Parse(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	ord, err := Ordinal(raw)
	if err != nil {
		return Version{}, err
	}
	ch := ChannelRelease
	if strings.HasSuffix(raw, SnapshotSuffix) {
		ch = ChannelSnapshot
	}
	return Version{raw: raw, ordinal: ord, channel: ch}, nil
}

// MustParse is like Parse but panics on error. Use it for static tables.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Release parses raw as a release version; a snapshot suffix is rejected.
func Release(raw string) (Version, error) {
	v, err := Parse(raw)
	if err != nil {
		return Version{}, err
	}
	if v.channel != ChannelRelease {
		return Version{}, &MalformedVersionError{Version: raw, Err: fmt.Errorf("release version carries %s suffix", SnapshotSuffix)}
	}
	return v, nil
}

// Snapshot parses raw as a snapshot version, appending the suffix if missing.
func Snapshot(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasSuffix(raw, SnapshotSuffix) {
		raw += SnapshotSuffix
	}
	return Parse(raw)
}

func (v Version) String() string { return v.raw }
func (v Version) Ordinal() int { return v.ordinal }
func (v Version) Channel() Channel { return v.channel }
func (v Version) IsSnapshot() bool { return v.channel == ChannelSnapshot }
func (v Version) IsZero() bool { return v.raw == "" }

// AtLeast reports whether v is the same level as or newer than other.
// A snapshot counts as the release it precedes.
func (v Version) AtLeast(other Version) bool {
	return v.ordinal >= other.ordinal
}
