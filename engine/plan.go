package engine

import (
	"strings"

	"github.com/shreyasren/popos-boot-health-check/model"
)

// BuildPlan computes the minimal field-level edits that bring the table in
// line with observed reality. All applicable edits land in one plan; approval
// happens at whole-run granularity, not per field.
func BuildPlan(obs *Observations) *model.RepairPlan {
	plan := &model.RepairPlan{}

	// Root repairs always re-address by filesystem UUID, whatever namespace
	// the row used before.
	if obs.Root.Mismatch != nil && obs.Root.Device.UUID != "" {
		plan.Edits = append(plan.Edits, model.Edit{
			Mountpoint: obs.Root.Entry.Mountpoint,
			Field:      model.FieldSpec,
			NewValue:   model.Spec{Kind: model.SpecUUID, Value: obs.Root.Device.UUID}.Token(),
		})
	}

	// ESP repairs preserve the existing namespace: a PARTUUID row stays
	// PARTUUID. When the device lacks an identifier in that namespace no edit
	// is planned — an empty identifier is never written.
	if m := obs.Esp.Mismatch; m != nil {
		spec := model.Spec{Kind: m.Kind, Value: obs.Esp.Device.ID(m.Kind)}
		if spec.Value != "" {
			plan.Edits = append(plan.Edits, model.Edit{
				Mountpoint: obs.Esp.Entry.Mountpoint,
				Field:      model.FieldSpec,
				NewValue:   spec.Token(),
			})
		}
	}

	hardenEdits(plan, obs.Esp)
	hardenEdits(plan, obs.Recovery)
	return plan
}

// hardenEdits appends the option and fsck-pass corrections for one entry.
// Existing option tokens are preserved verbatim and in order; the umask token
// is appended at the end.
func hardenEdits(plan *model.RepairPlan, st MountState) {
	if st.Entry == nil {
		return
	}
	if st.Finding.MissingUmask {
		opts := append(append([]string(nil), st.Entry.Options...), HardenedUmask)
		plan.Edits = append(plan.Edits, model.Edit{
			Mountpoint: st.Entry.Mountpoint,
			Field:      model.FieldOptions,
			NewValue:   strings.Join(opts, ","),
		})
	}
	if st.Finding.WrongPass {
		plan.Edits = append(plan.Edits, model.Edit{
			Mountpoint: st.Entry.Mountpoint,
			Field:      model.FieldPass,
			NewValue:   "0",
		})
	}
}
