// Package engine holds the reconciliation core: classifying configured
// identifiers against resolved devices, auditing hardening options, planning
// minimal repairs, and the refresh actions that follow an applied change.
// Classification, audit, and planning are pure functions of the read phase's
// output, so the whole decision path is testable without privilege.
package engine

import (
	"github.com/shreyasren/popos-boot-health-check/config"
	"github.com/shreyasren/popos-boot-health-check/fstab"
	"github.com/shreyasren/popos-boot-health-check/model"
	"github.com/shreyasren/popos-boot-health-check/probe"
)

// MountState bundles everything observed about one mountpoint: the configured
// row (nil when absent), the resolved device, and the classification results.
type MountState struct {
	Name     string
	Entry    *model.ConfigEntry
	Device   model.RealDevice
	Mismatch *model.Mismatch
	Finding  model.HardeningFinding
	ProbeErr error

	// Vital marks mountpoints whose absence from live mount state is itself a
	// warning. A recovery partition may legitimately not exist.
	Vital bool
}

// Observations is the read-phase output consumed by reporting and planning.
type Observations struct {
	Table    *fstab.Table
	Root     MountState
	Esp      MountState
	Recovery MountState
}

// Inspect runs the read-only phase: extract the configured rows, resolve the
// live devices, classify mismatches, and audit hardening. Nothing here writes
// or requires authorization.
func Inspect(cfg config.Config) (*Observations, error) {
	table, err := fstab.Load(cfg.FstabPath)
	if err != nil {
		return nil, err
	}

	obs := &Observations{Table: table}
	obs.Root = inspectMount(table, "/", "root", true)
	obs.Esp = inspectMount(table, cfg.EspMount, "ESP", true)
	obs.Recovery = inspectMount(table, cfg.RecoveryMount, "recovery", false)

	// Identifier reconciliation applies to root and ESP; recovery is audited
	// for hardening only.
	obs.Root.Mismatch = Classify(obs.Root.Entry, obs.Root.Device)
	obs.Esp.Mismatch = Classify(obs.Esp.Entry, obs.Esp.Device)
	obs.Esp.Finding = Audit(obs.Esp.Entry)
	obs.Recovery.Finding = Audit(obs.Recovery.Entry)

	return obs, nil
}

func inspectMount(table *fstab.Table, mountpoint, name string, vital bool) MountState {
	st := MountState{Name: name, Vital: vital}
	st.Entry = table.FindEntry(mountpoint)
	st.Device, st.ProbeErr = probe.ResolveMount(mountpoint)
	return st
}
