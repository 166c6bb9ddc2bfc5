package engine

import "github.com/shreyasren/popos-boot-health-check/model"

// Classify compares a configured spec against the resolved device. The real
// identifier is always selected from the same namespace the table declares;
// a UUID-configured row is never compared against a real PARTUUID. A mismatch
// is declared only when both sides are non-empty and differ by exact string
// comparison — absence of data reads as unknown, never as a mismatch.
func Classify(entry *model.ConfigEntry, dev model.RealDevice) *model.Mismatch {
	if entry == nil || !dev.Mounted {
		return nil
	}
	kind := entry.Spec.Kind
	if kind == model.SpecRaw {
		// Raw device paths carry no identifier namespace to compare in.
		return nil
	}
	actual := dev.ID(kind)
	if entry.Spec.Value == "" || actual == "" {
		return nil
	}
	if entry.Spec.Value == actual {
		return nil
	}
	return &model.Mismatch{
		Mountpoint: entry.Mountpoint,
		Kind:       kind,
		Configured: entry.Spec.Value,
		Actual:     actual,
	}
}
