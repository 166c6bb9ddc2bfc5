package model

import "strings"

// SpecKind identifies the namespace of an fstab device spec token. UUID and
// PARTUUID both name the same physical partition but are not interchangeable
// strings, so the kind is carried explicitly instead of re-matching prefixes
// at every use site.
type SpecKind int

const (
	SpecRaw      SpecKind = 0 // bare device path, e.g. /dev/nvme0n1p3
	SpecUUID     SpecKind = 1
	SpecPartUUID SpecKind = 2
)

func (k SpecKind) String() string {
	switch k {
	case SpecUUID:
		return "UUID"
	case SpecPartUUID:
		return "PARTUUID"
	}
	return "device"
}

// Spec is the first fstab field, tagged with its namespace. Value holds the
// bare identifier (prefix stripped) or the raw device path.
type Spec struct {
	Kind  SpecKind
	Value string
}

// ParseSpec derives the namespace from the literal on-disk token.
func ParseSpec(token string) Spec {
	if v, ok := strings.CutPrefix(token, "UUID="); ok {
		return Spec{Kind: SpecUUID, Value: v}
	}
	if v, ok := strings.CutPrefix(token, "PARTUUID="); ok {
		return Spec{Kind: SpecPartUUID, Value: v}
	}
	return Spec{Kind: SpecRaw, Value: token}
}

// Token renders the spec back into its on-disk form.
func (s Spec) Token() string {
	switch s.Kind {
	case SpecUUID:
		return "UUID=" + s.Value
	case SpecPartUUID:
		return "PARTUUID=" + s.Value
	}
	return s.Value
}

// ConfigEntry is one row of the boot configuration table for a mountpoint.
type ConfigEntry struct {
	Mountpoint string
	Spec       Spec
	FSType     string
	Options    []string // comma-split tokens, order preserved
	Dump       int
	Pass       int

	// Line and Raw anchor the entry back to its source line so rewrites can
	// leave everything else byte-for-byte untouched.
	Line int
	Raw  string
}

// HasOption reports whether the exact option token is present.
func (e *ConfigEntry) HasOption(token string) bool {
	for _, o := range e.Options {
		if o == token {
			return true
		}
	}
	return false
}

// OptionsField renders the options back into the comma-joined fstab field.
func (e *ConfigEntry) OptionsField() string {
	if len(e.Options) == 0 {
		return "defaults"
	}
	return strings.Join(e.Options, ",")
}
