package model

// RealDevice is the resolved runtime device backing a mountpoint. Either
// identifier may be empty — a FAT filesystem has no PARTUUID on an MBR disk,
// and swap devices carry no filesystem UUID at all.
type RealDevice struct {
	Mountpoint string
	DevicePath string
	UUID       string
	PartUUID   string
	FSType     string

	// Mounted distinguishes "resolved but empty identifiers" from "nothing is
	// mounted there at all"; the latter is a reportable finding on its own and
	// never feeds mismatch classification.
	Mounted bool
}

// ID returns the identifier in the given namespace, or "" when absent.
func (d RealDevice) ID(kind SpecKind) string {
	switch kind {
	case SpecUUID:
		return d.UUID
	case SpecPartUUID:
		return d.PartUUID
	}
	return ""
}
