package cmd

import (
	"fmt"

	"github.com/shreyasren/popos-boot-health-check/config"
	"github.com/shreyasren/popos-boot-health-check/engine"
	"github.com/shreyasren/popos-boot-health-check/fstab"
	"github.com/shreyasren/popos-boot-health-check/model"
	"github.com/shreyasren/popos-boot-health-check/probe"
	"github.com/shreyasren/popos-boot-health-check/ui"
)

// runInteractive plans minimal table repairs and applies them after a single
// whole-plan confirmation. The order is strict: report, confirm, backup,
// atomic rewrite, refresh. A backup failure aborts before any mutation.
func runInteractive(cfg config.Config) error {
	if err := requireRoot(ModeInteractive); err != nil {
		return err
	}

	obs, report, err := gather(cfg, ModeInteractive)
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderReport(report, Version, cfg.Color))

	plan := engine.BuildPlan(obs)
	if plan.Empty() {
		fmt.Println(" no changes needed")
		return nil
	}

	accepted, err := ui.Confirm(ui.RenderPlan(obs, plan, cfg.Color))
	if err != nil {
		return fmt.Errorf("confirmation prompt: %w", err)
	}
	if !accepted {
		fmt.Println(" declined, nothing written")
		return nil
	}

	backup, err := fstab.Backup(cfg.FstabPath)
	if err != nil {
		return fmt.Errorf("backup failed, aborting before any edit: %w", err)
	}
	if err := obs.Table.Apply(plan); err != nil {
		return fmt.Errorf("rewrite %s: %w", cfg.FstabPath, err)
	}
	fmt.Printf(" applied %d edit(s), backup at %s\n\n", len(plan.Edits), backup)

	var actions []model.CheckResult

	// The cmdline has to follow the table: a repaired root row is useless if
	// root= still names the old identifier.
	if obs.Root.Mismatch != nil && obs.Root.Device.UUID != "" {
		current, _ := probe.KernelCmdlineRoot()
		out, err := engine.SetRootParam(current, obs.Root.Device.UUID)
		actions = append(actions, actionResult("kernel cmdline", out, err))
	}

	out, err := engine.RebuildInitramfs()
	actions = append(actions, actionResult("ramdisk rebuild", out, err))
	out, err = engine.RefreshLoader(cfg.EspMount)
	actions = append(actions, actionResult("boot loader", out, err))
	fmt.Print(ui.RenderChecks(actions, cfg.Color))
	return nil
}
