package engine

import "github.com/shreyasren/popos-boot-health-check/model"

// HardenedUmask is the mount option that keeps the firmware partition
// unreadable to regular users.
const HardenedUmask = "umask=0077"

// Audit flags missing FAT32 hardening on a boot entry: the restrictive umask
// option and a disabled fsck pass. The recommendation is vfat-specific, so
// non-vfat entries (and absent entries) are exempt.
func Audit(entry *model.ConfigEntry) model.HardeningFinding {
	var f model.HardeningFinding
	if entry == nil || entry.FSType != "vfat" {
		return f
	}
	f.Mountpoint = entry.Mountpoint
	f.MissingUmask = !entry.HasOption(HardenedUmask)
	f.WrongPass = entry.Pass != 0
	return f
}
