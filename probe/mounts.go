// Package probe queries live system state: mount tables, device identifier
// metadata, and the read-only boot surfaces (loader entries, installed
// kernels, crypttab). Every probe is a one-shot blocking call; missing tools
// degrade to an error the caller reports, never to a process failure.
package probe

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/shreyasren/popos-boot-health-check/model"
)

// findmntOutput mirrors findmnt --json.
type findmntOutput struct {
	Filesystems []struct {
		Target string `json:"target"`
		Source string `json:"source"`
		FSType string `json:"fstype"`
	} `json:"filesystems"`
}

// ResolveMount maps a mountpoint to its backing device using live mount state.
// A mountpoint with nothing mounted resolves to Mounted=false, not an error:
// the table is trusted only for which mountpoint to look at, never for which
// device backs it.
func ResolveMount(mountpoint string) (model.RealDevice, error) {
	dev := model.RealDevice{Mountpoint: mountpoint}

	out, err := exec.Command("findmnt", "-J", "-o", "TARGET,SOURCE,FSTYPE", "-M", mountpoint).Output()
	if err != nil {
		// findmnt exits non-zero when the mountpoint is not mounted.
		if _, ok := err.(*exec.ExitError); ok {
			return dev, nil
		}
		return dev, fmt.Errorf("findmnt %s: %w", mountpoint, err)
	}

	source, fstype, err := parseFindmnt(out, mountpoint)
	if err != nil {
		return dev, err
	}
	if source == "" {
		return dev, nil
	}

	dev.Mounted = true
	dev.DevicePath = source
	dev.FSType = fstype

	uuid, partuuid, err := DeviceIDs(source)
	if err != nil {
		// Identifier metadata is best-effort; the mount itself resolved.
		return dev, nil
	}
	dev.UUID = uuid
	dev.PartUUID = partuuid
	return dev, nil
}

// parseFindmnt extracts the source device and fstype for mountpoint from
// findmnt --json output.
func parseFindmnt(out []byte, mountpoint string) (source, fstype string, err error) {
	var data findmntOutput
	if err := json.Unmarshal(out, &data); err != nil {
		return "", "", fmt.Errorf("parse findmnt output for %s: %w", mountpoint, err)
	}
	if len(data.Filesystems) == 0 {
		return "", "", nil
	}
	fs := data.Filesystems[0]
	return fs.Source, fs.FSType, nil
}
