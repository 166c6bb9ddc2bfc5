// Package fstab reads and rewrites the boot configuration table. The table is
// handled as a list of verbatim lines: lookups parse individual rows, and
// rewrites touch only the targeted fields of the targeted rows so every other
// byte of the file survives unchanged.
package fstab

import (
	"strings"

	"github.com/shreyasren/popos-boot-health-check/model"
	"github.com/shreyasren/popos-boot-health-check/util"
)

// Table is one loaded fstab file.
type Table struct {
	Path  string
	Lines []string
}

// Load reads the table at path, preserving every line as-is.
func Load(path string) (*Table, error) {
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, err
	}
	return &Table{Path: path, Lines: lines}, nil
}

// FindEntry returns the first row whose mountpoint field equals mountpoint
// exactly, or nil when no row targets it. Comments and blank lines are
// skipped; duplicate rows keep the conventional first-match-wins behavior.
func (t *Table) FindEntry(mountpoint string) *model.ConfigEntry {
	for i, line := range t.Lines {
		entry, ok := parseLine(line, i)
		if !ok {
			continue
		}
		if entry.Mountpoint == mountpoint {
			return entry
		}
	}
	return nil
}

// parseLine parses a single table row. Rows with fewer than four fields are
// not entries (dump and pass default to 0 when omitted).
func parseLine(line string, idx int) (*model.ConfigEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}
	fields := strings.Fields(trimmed)
	if len(fields) < 4 {
		return nil, false
	}

	entry := &model.ConfigEntry{
		Mountpoint: fields[1],
		Spec:       model.ParseSpec(fields[0]),
		FSType:     fields[2],
		Options:    strings.Split(fields[3], ","),
		Line:       idx,
		Raw:        line,
	}
	if len(fields) > 4 {
		entry.Dump = util.ParseInt(fields[4])
	}
	if len(fields) > 5 {
		entry.Pass = util.ParseInt(fields[5])
	}
	return entry, true
}
