package cmd

import (
	"fmt"

	"github.com/shreyasren/popos-boot-health-check/config"
	"github.com/shreyasren/popos-boot-health-check/engine"
	"github.com/shreyasren/popos-boot-health-check/model"
	"github.com/shreyasren/popos-boot-health-check/probe"
	"github.com/shreyasren/popos-boot-health-check/ui"
)

// runFix corrects the kernel command line and refreshes the downstream boot
// artifacts. The configuration table itself is never touched in this mode.
func runFix(cfg config.Config) error {
	if err := requireRoot(ModeFix); err != nil {
		return err
	}

	obs, report, err := gather(cfg, ModeFix)
	if err != nil {
		return err
	}

	var actions []model.CheckResult

	// root= is only rewritten when there is a mismatch to correct and a real
	// UUID to point it at.
	if obs.Root.Mismatch != nil && obs.Root.Device.UUID != "" {
		current, _ := probe.KernelCmdlineRoot()
		out, err := engine.SetRootParam(current, obs.Root.Device.UUID)
		actions = append(actions, actionResult("kernel cmdline", out, err))
	}

	// Ramdisk and loader refresh run unconditionally in this mode: a stale
	// initramfs can make even a correct table unbootable.
	out, err := engine.RebuildInitramfs()
	actions = append(actions, actionResult("ramdisk rebuild", out, err))
	out, err = engine.RefreshLoader(cfg.EspMount)
	actions = append(actions, actionResult("boot loader", out, err))

	report.Add(actions...)
	fmt.Print(ui.RenderReport(report, Version, cfg.Color))
	return nil
}
