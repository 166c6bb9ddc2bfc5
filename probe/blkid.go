package probe

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DeviceIDs queries blkid for the UUID and PARTUUID of a device path. Either
// may be empty for a given device. The query is read-only; when the process
// is unprivileged only this single call is escalated through sudo, because
// blkid needs to open the block device to report accurate metadata.
func DeviceIDs(devicePath string) (uuid, partuuid string, err error) {
	out, err := runBlkid(devicePath)
	if err != nil {
		return "", "", fmt.Errorf("blkid %s: %w", devicePath, err)
	}
	uuid, partuuid = parseBlkidExport(out)
	return uuid, partuuid, nil
}

func runBlkid(devicePath string) ([]byte, error) {
	args := []string{"blkid", "-o", "export", devicePath}
	if os.Geteuid() != 0 {
		out, err := exec.Command("sudo", append([]string{"-n"}, args...)...).Output()
		if err == nil {
			return out, nil
		}
		// No cached sudo credentials: fall back to an unescalated query,
		// which may still answer from the blkid cache.
	}
	return exec.Command(args[0], args[1:]...).Output()
}

// parseBlkidExport reads blkid -o export KEY=VALUE lines. Values are kept
// exactly as emitted; identifier casing is never normalized.
func parseBlkidExport(out []byte) (uuid, partuuid string) {
	for _, line := range strings.Split(string(out), "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "UUID":
			uuid = val
		case "PARTUUID":
			partuuid = val
		}
	}
	return uuid, partuuid
}
