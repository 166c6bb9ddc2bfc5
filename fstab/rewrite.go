package fstab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shreyasren/popos-boot-health-check/model"
)

// field column indexes within an fstab row.
const (
	colSpec    = 0
	colOptions = 3
	colPass    = 5
)

// Backup copies the table to <path>.bak.<timestamp> before any edit. The
// timestamp has second resolution so repeated repair runs never collide.
// Callers must treat a backup failure as fatal.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s for backup: %w", path, err)
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	backup := fmt.Sprintf("%s.bak.%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backup, data, mode); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backup, err)
	}
	return backup, nil
}

// Render builds the new table content for a plan. Only the targeted fields of
// the targeted rows change; every other line, including comments and blanks,
// is carried over byte-for-byte. Field separators within an edited row are
// preserved as well.
func (t *Table) Render(plan *model.RepairPlan) (string, error) {
	lines := make([]string, len(t.Lines))
	copy(lines, t.Lines)

	for _, edit := range plan.Edits {
		idx, err := findLine(lines, edit.Mountpoint)
		if err != nil {
			return "", err
		}
		col := colSpec
		switch edit.Field {
		case model.FieldOptions:
			col = colOptions
		case model.FieldPass:
			col = colPass
		}
		replaced, ok := replaceField(lines[idx], col, edit.NewValue)
		if !ok {
			return "", fmt.Errorf("row for %s has no field %d", edit.Mountpoint, col)
		}
		lines[idx] = replaced
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// Apply renders the plan and atomically replaces the live table: the new
// content goes to a temporary file in the same directory first, then renames
// into place, so an interruption mid-write cannot leave a half-written table.
func (t *Table) Apply(plan *model.RepairPlan) error {
	content, err := t.Render(plan)
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(t.Path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(t.Path)
	tmp, err := os.CreateTemp(dir, ".fstab-*")
	if err != nil {
		return fmt.Errorf("create temp table in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp table: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp table: %w", err)
	}
	if err := os.Rename(tmpPath, t.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", t.Path, err)
	}

	t.Lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	return nil
}

// findLine locates the first row targeting mountpoint.
func findLine(lines []string, mountpoint string) (int, error) {
	for i, line := range lines {
		entry, ok := parseLine(line, i)
		if !ok {
			continue
		}
		if entry.Mountpoint == mountpoint {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no row targets %s", mountpoint)
}

// replaceField swaps the idx-th whitespace-separated field of line for newVal
// while keeping every separator run intact. Returns false when the line has
// no such field.
func replaceField(line string, idx int, newVal string) (string, bool) {
	var b strings.Builder
	field := -1
	i := 0
	for i < len(line) {
		start := i
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		b.WriteString(line[start:i])
		if i >= len(line) {
			break
		}
		start = i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		field++
		if field == idx {
			b.WriteString(newVal)
		} else {
			b.WriteString(line[start:i])
		}
	}
	return b.String(), field >= idx
}
