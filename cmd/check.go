package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shreyasren/popos-boot-health-check/config"
	"github.com/shreyasren/popos-boot-health-check/engine"
	"github.com/shreyasren/popos-boot-health-check/model"
	"github.com/shreyasren/popos-boot-health-check/probe"
	"github.com/shreyasren/popos-boot-health-check/ui"
)

// runCheck performs the read-only phase and renders the report. No mode
// writes anything before this phase has completed.
func runCheck(cfg config.Config) error {
	_, report, err := gather(cfg, ModeCheck)
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderReport(report, Version, cfg.Color))
	return nil
}

// gather runs the reconciliation read phase plus the informational probes
// and assembles the report. Informational probe failures degrade to SKIP
// entries; only an unreadable fstab is fatal.
func gather(cfg config.Config, mode Mode) (*engine.Observations, *model.Report, error) {
	obs, err := engine.Inspect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", cfg.FstabPath, err)
	}

	hostname, _ := os.Hostname()
	report := &model.Report{
		Timestamp: time.Now(),
		Hostname:  hostname,
		Mode:      mode.String(),
	}
	report.Add(obs.Checks()...)
	report.Add(checkCmdlineRoot(obs)...)
	report.Add(checkLoader()...)
	report.Add(checkKernels()...)
	report.Add(checkCrypttab(cfg)...)
	return obs, report, nil
}

// checkCmdlineRoot cross-checks the running kernel's root= parameter against
// the resolved root device.
func checkCmdlineRoot(obs *engine.Observations) []model.CheckResult {
	const name = "root= param"
	token, err := probe.KernelCmdlineRoot()
	if err != nil {
		return []model.CheckResult{{
			Category: "Kernel cmdline", Name: name,
			Status: model.CheckSkip, Detail: fmt.Sprintf("cmdline unreadable: %v", err),
		}}
	}
	if token == "" {
		return []model.CheckResult{{
			Category: "Kernel cmdline", Name: name,
			Status: model.CheckSkip, Detail: "no root= parameter on the cmdline",
		}}
	}

	spec := model.ParseSpec(strings.TrimPrefix(token, "root="))
	if spec.Kind == model.SpecRaw {
		return []model.CheckResult{{
			Category: "Kernel cmdline", Name: name,
			Status: model.CheckOK, Detail: token,
		}}
	}
	actual := obs.Root.Device.ID(spec.Kind)
	if !obs.Root.Device.Mounted || actual == "" {
		return []model.CheckResult{{
			Category: "Kernel cmdline", Name: name,
			Status: model.CheckSkip, Detail: fmt.Sprintf("%s (root device %s unknown)", token, spec.Kind),
		}}
	}
	if spec.Value != actual {
		return []model.CheckResult{{
			Category: "Kernel cmdline", Name: name,
			Status: model.CheckWarn,
			Detail: fmt.Sprintf("%s but root device has %s=%s", token, spec.Kind, actual),
			Advice: "run with --fix to rewrite it via kernelstub",
		}}
	}
	return []model.CheckResult{{
		Category: "Kernel cmdline", Name: name,
		Status: model.CheckOK, Detail: fmt.Sprintf("%s matches the root device", token),
	}}
}

func checkLoader() []model.CheckResult {
	out, err := probe.LoaderEntries()
	if err != nil {
		return []model.CheckResult{{
			Category: "Boot loader", Name: "entries",
			Status: model.CheckSkip, Detail: err.Error(),
		}}
	}
	if out == "" {
		return []model.CheckResult{{
			Category: "Boot loader", Name: "entries",
			Status: model.CheckWarn, Detail: "no loader entries found",
			Advice: "run with --fix to reinstall the loader",
		}}
	}
	return []model.CheckResult{{
		Category: "Boot loader", Name: "entries",
		Status: model.CheckOK, Detail: out,
	}}
}

func checkKernels() []model.CheckResult {
	var checks []model.CheckResult

	kernels, err := probe.InstalledKernels()
	if err != nil {
		checks = append(checks, model.CheckResult{
			Category: "Kernels", Name: "installed",
			Status: model.CheckSkip, Detail: err.Error(),
		})
	} else if len(kernels) == 0 {
		checks = append(checks, model.CheckResult{
			Category: "Kernels", Name: "installed",
			Status: model.CheckCrit, Detail: "no kernel packages installed",
		})
	} else {
		checks = append(checks, model.CheckResult{
			Category: "Kernels", Name: "installed",
			Status: model.CheckOK, Detail: strings.Join(kernels, "\n"),
		})
	}

	images := probe.RamdiskImages()
	if len(images) == 0 {
		checks = append(checks, model.CheckResult{
			Category: "Kernels", Name: "ramdisks",
			Status: model.CheckWarn, Detail: "no initrd images in /boot",
			Advice: "run with --fix to rebuild them",
		})
	} else {
		checks = append(checks, model.CheckResult{
			Category: "Kernels", Name: "ramdisks",
			Status: model.CheckOK, Detail: strings.Join(images, "\n"),
		})
	}
	return checks
}

func checkCrypttab(cfg config.Config) []model.CheckResult {
	entries, err := probe.CrypttabEntries(cfg.CrypttabPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.CheckResult{{
				Category: "Encryption", Name: "crypttab",
				Status: model.CheckOK, Detail: "no crypttab present",
			}}
		}
		return []model.CheckResult{{
			Category: "Encryption", Name: "crypttab",
			Status: model.CheckSkip, Detail: fmt.Sprintf("unreadable: %v", err),
		}}
	}
	if len(entries) == 0 {
		return []model.CheckResult{{
			Category: "Encryption", Name: "crypttab",
			Status: model.CheckOK, Detail: "no active entries",
		}}
	}
	return []model.CheckResult{{
		Category: "Encryption", Name: "crypttab",
		Status: model.CheckWarn,
		Detail: strings.Join(entries, "\n"),
		Advice: "stale mappings slow the boot down; verify these are still valid",
	}}
}

// actionResult wraps a refresh action's outcome as a report check. Failures
// are warnings: refresh is best-effort and the run completes regardless.
func actionResult(name, out string, err error) model.CheckResult {
	c := model.CheckResult{Category: "Refresh", Name: name, Status: model.CheckOK, Detail: "done"}
	if out != "" {
		c.Detail = out
	}
	if err != nil {
		c.Status = model.CheckWarn
		c.Detail = err.Error()
		if out != "" {
			c.Detail = fmt.Sprintf("%v\n%s", err, out)
		}
	}
	return c
}
