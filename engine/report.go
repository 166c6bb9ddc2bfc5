package engine

import (
	"fmt"

	"github.com/shreyasren/popos-boot-health-check/model"
)

const (
	catTable  = "Filesystem table"
	catHarden = "Hardening"
)

// Checks renders the reconciliation findings as report checks. Resolution
// gaps surface as SKIP, hardening gaps as WARN, identifier divergence as CRIT.
func (o *Observations) Checks() []model.CheckResult {
	var checks []model.CheckResult
	checks = append(checks, mountChecks(o.Root)...)
	checks = append(checks, mountChecks(o.Esp)...)
	checks = append(checks, mountChecks(o.Recovery)...)
	checks = append(checks, hardenChecks(o.Esp)...)
	checks = append(checks, hardenChecks(o.Recovery)...)
	return checks
}

func mountChecks(st MountState) []model.CheckResult {
	if st.Entry == nil {
		return []model.CheckResult{{
			Category: catTable, Name: st.Name,
			Status: model.CheckSkip, Detail: "none configured",
		}}
	}
	if st.ProbeErr != nil {
		return []model.CheckResult{{
			Category: catTable, Name: st.Name,
			Status: model.CheckSkip, Detail: fmt.Sprintf("device resolution failed: %v", st.ProbeErr),
		}}
	}
	if !st.Device.Mounted {
		status := model.CheckSkip
		advice := ""
		if st.Vital {
			status = model.CheckWarn
			advice = fmt.Sprintf("mount %s and re-run", st.Entry.Mountpoint)
		}
		return []model.CheckResult{{
			Category: catTable, Name: st.Name,
			Status: status, Detail: "not mounted", Advice: advice,
		}}
	}

	if m := st.Mismatch; m != nil {
		return []model.CheckResult{{
			Category: catTable, Name: st.Name,
			Status: model.CheckCrit,
			Detail: fmt.Sprintf("configured %s=%s but %s has %s=%s",
				m.Kind, m.Configured, st.Device.DevicePath, m.Kind, m.Actual),
			Advice: "run with --interactive to repair the table, or --fix to correct the kernel cmdline",
		}}
	}

	switch st.Entry.Spec.Kind {
	case model.SpecRaw:
		return []model.CheckResult{{
			Category: catTable, Name: st.Name,
			Status: model.CheckOK,
			Detail: fmt.Sprintf("addressed by device path %s", st.Entry.Spec.Value),
		}}
	default:
		kind := st.Entry.Spec.Kind
		if st.Device.ID(kind) == "" {
			return []model.CheckResult{{
				Category: catTable, Name: st.Name,
				Status: model.CheckSkip,
				Detail: fmt.Sprintf("%s reports no %s", st.Device.DevicePath, kind),
			}}
		}
		return []model.CheckResult{{
			Category: catTable, Name: st.Name,
			Status: model.CheckOK,
			Detail: fmt.Sprintf("%s matches (%s)", kind, st.Entry.Spec.Value),
		}}
	}
}

func hardenChecks(st MountState) []model.CheckResult {
	if st.Entry == nil || st.Entry.FSType != "vfat" {
		return nil
	}
	var checks []model.CheckResult
	if st.Finding.MissingUmask {
		checks = append(checks, model.CheckResult{
			Category: catHarden, Name: st.Name,
			Status: model.CheckWarn,
			Detail: fmt.Sprintf("%s missing from mount options", HardenedUmask),
			Advice: "run with --interactive to append it",
		})
	}
	if st.Finding.WrongPass {
		checks = append(checks, model.CheckResult{
			Category: catHarden, Name: st.Name,
			Status: model.CheckWarn,
			Detail: fmt.Sprintf("fsck pass is %d, vfat boot partitions want 0", st.Entry.Pass),
			Advice: "run with --interactive to disable it",
		})
	}
	if len(checks) == 0 {
		checks = append(checks, model.CheckResult{
			Category: catHarden, Name: st.Name,
			Status: model.CheckOK,
			Detail: fmt.Sprintf("%s present, fsck disabled", HardenedUmask),
		})
	}
	return checks
}
