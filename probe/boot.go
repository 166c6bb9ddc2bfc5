package probe

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shreyasren/popos-boot-health-check/util"
)

// LoaderEntries lists the systemd-boot loader entries on the ESP, surfaced
// verbatim for the report.
func LoaderEntries() (string, error) {
	path, err := exec.LookPath("bootctl")
	if err != nil {
		return "", fmt.Errorf("bootctl not found")
	}
	out, err := exec.Command(path, "list", "--no-pager").Output()
	if err != nil {
		return "", fmt.Errorf("bootctl list: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// InstalledKernels queries the package database for installed kernel images.
func InstalledKernels() ([]string, error) {
	path, err := exec.LookPath("dpkg-query")
	if err != nil {
		return nil, fmt.Errorf("dpkg-query not found (non-Debian system)")
	}
	out, err := exec.Command(path, "-W", "-f", "${Package}\t${Version}\n", "linux-image-*").Output()
	if err != nil {
		return nil, fmt.Errorf("dpkg-query: %w", err)
	}
	var kernels []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			kernels = append(kernels, strings.ReplaceAll(line, "\t", " "))
		}
	}
	return kernels, nil
}

// RamdiskImages lists the initrd images present in /boot.
func RamdiskImages() []string {
	matches, _ := filepath.Glob("/boot/initrd.img-*")
	sort.Strings(matches)
	return matches
}

// CrypttabEntries returns the non-comment lines of the crypttab, verbatim.
// A non-empty result is informational only: stale mapping entries slow the
// boot down but the audit never rewrites this table.
func CrypttabEntries(path string) ([]string, error) {
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// KernelCmdlineRoot returns the root= token from the running kernel's command
// line, or "" when absent.
func KernelCmdlineRoot() (string, error) {
	content, err := util.ReadFileString("/proc/cmdline")
	if err != nil {
		return "", err
	}
	return rootToken(content), nil
}

// rootToken finds the root= parameter within a kernel command line.
func rootToken(cmdline string) string {
	for _, tok := range strings.Fields(cmdline) {
		if strings.HasPrefix(tok, "root=") {
			return tok
		}
	}
	return ""
}
