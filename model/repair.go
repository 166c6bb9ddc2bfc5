package model

// Mismatch records a divergence between a configured identifier and the
// identifier of the device actually mounted at that mountpoint, compared in
// the namespace the table declares. A nil *Mismatch means no mismatch.
type Mismatch struct {
	Mountpoint string
	Kind       SpecKind
	Configured string
	Actual     string
}

// HardeningFinding flags missing FAT32 hardening on a vfat boot entry.
type HardeningFinding struct {
	Mountpoint   string
	MissingUmask bool
	WrongPass    bool
}

// Any reports whether the finding flags anything at all.
func (f HardeningFinding) Any() bool {
	return f.MissingUmask || f.WrongPass
}

// Field names an editable fstab column.
type Field int

const (
	FieldSpec Field = iota
	FieldOptions
	FieldPass
)

func (f Field) String() string {
	switch f {
	case FieldSpec:
		return "spec"
	case FieldOptions:
		return "options"
	case FieldPass:
		return "pass"
	}
	return "unknown"
}

// Edit is one field-level correction to a single fstab row.
type Edit struct {
	Mountpoint string
	Field      Field
	NewValue   string
}

// RepairPlan is the ordered set of edits needed to reconcile the table.
// An empty plan is a valid, no-op outcome.
type RepairPlan struct {
	Edits []Edit
}

// Empty reports whether the plan contains no edits.
func (p *RepairPlan) Empty() bool {
	return p == nil || len(p.Edits) == 0
}
