package engine

import (
	"fmt"
	"os/exec"
	"strings"
)

// The refresh actions invoke the downstream boot-artifact tools after a
// change. Each returns the tool's combined output for the report; failures
// are reported by the caller and never abort the run.

// SetRootParam rewrites the kernel command line via kernelstub: the existing
// root= token (as read from /proc/cmdline) is deleted, then root=UUID=<uuid>
// is added. The configuration table is never touched here.
func SetRootParam(currentRoot, uuid string) (string, error) {
	path, err := exec.LookPath("kernelstub")
	if err != nil {
		return "", fmt.Errorf("kernelstub not found")
	}
	var args []string
	if currentRoot != "" {
		args = append(args, "-d", currentRoot)
	}
	args = append(args, "-a", "root=UUID="+uuid)
	out, err := exec.Command(path, args...).CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), fmt.Errorf("kernelstub: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RebuildInitramfs regenerates the ramdisk for every installed kernel.
func RebuildInitramfs() (string, error) {
	path, err := exec.LookPath("update-initramfs")
	if err != nil {
		return "", fmt.Errorf("update-initramfs not found")
	}
	out, err := exec.Command(path, "-u", "-k", "all").CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), fmt.Errorf("update-initramfs: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RefreshLoader reinstalls the systemd-boot loader on the ESP. bootctl
// complains when the loader is already current; that is tolerated upstream
// as a best-effort refresh.
func RefreshLoader(espMount string) (string, error) {
	path, err := exec.LookPath("bootctl")
	if err != nil {
		return "", fmt.Errorf("bootctl not found")
	}
	out, err := exec.Command(path, "--path="+espMount, "install").CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), fmt.Errorf("bootctl install: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
