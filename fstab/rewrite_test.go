package fstab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shreyasren/popos-boot-health-check/model"
)

func TestRenderSpecEdit(t *testing.T) {
	table := tableFrom(sampleTable)
	plan := &model.RepairPlan{Edits: []model.Edit{
		{Mountpoint: "/", Field: model.FieldSpec, NewValue: "UUID=bbbb-9999"},
	}}

	content, err := table.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	want := "UUID=bbbb-9999  /  ext4  noatime,errors=remount-ro  0  1"
	if lines[4] != want {
		t.Errorf("edited row = %q; want %q", lines[4], want)
	}

	// Every line not targeted by the plan is byte-identical.
	for i, line := range lines {
		if i == 4 {
			continue
		}
		if line != table.Lines[i] {
			t.Errorf("line %d changed: %q -> %q", i, table.Lines[i], line)
		}
	}
}

func TestRenderPreservesSeparators(t *testing.T) {
	table := tableFrom("UUID=old\t/\text4\tdefaults \t 0  1\n")
	plan := &model.RepairPlan{Edits: []model.Edit{
		{Mountpoint: "/", Field: model.FieldSpec, NewValue: "UUID=new"},
	}}

	content, err := table.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "UUID=new\t/\text4\tdefaults \t 0  1\n"
	if content != want {
		t.Errorf("Render() = %q; want %q (separator runs preserved)", content, want)
	}
}

func TestRenderOptionsAndPassEdits(t *testing.T) {
	table := tableFrom("UUID=dead  /boot/efi  vfat  defaults  0  1\n")
	plan := &model.RepairPlan{Edits: []model.Edit{
		{Mountpoint: "/boot/efi", Field: model.FieldOptions, NewValue: "defaults,umask=0077"},
		{Mountpoint: "/boot/efi", Field: model.FieldPass, NewValue: "0"},
	}}

	content, err := table.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "UUID=dead  /boot/efi  vfat  defaults,umask=0077  0  0\n"
	if content != want {
		t.Errorf("Render() = %q; want %q", content, want)
	}
}

func TestRenderUnknownMountpoint(t *testing.T) {
	table := tableFrom(sampleTable)
	plan := &model.RepairPlan{Edits: []model.Edit{
		{Mountpoint: "/nope", Field: model.FieldSpec, NewValue: "UUID=x"},
	}}
	if _, err := table.Render(plan); err == nil {
		t.Error("Render() with an untargetable mountpoint should fail")
	}
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fstab")
	if err := os.WriteFile(path, []byte(sampleTable), 0644); err != nil {
		t.Fatalf("write sample table: %v", err)
	}

	backup, err := Backup(path)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if !strings.HasPrefix(backup, path+".bak.") {
		t.Errorf("backup path = %q; want prefix %q", backup, path+".bak.")
	}
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != sampleTable {
		t.Error("backup content differs from the original table")
	}
}

func TestBackupMissingTableFails(t *testing.T) {
	if _, err := Backup(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Backup() of a missing table must fail")
	}
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fstab")
	if err := os.WriteFile(path, []byte(sampleTable), 0644); err != nil {
		t.Fatalf("write sample table: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	plan := &model.RepairPlan{Edits: []model.Edit{
		{Mountpoint: "/", Field: model.FieldSpec, NewValue: "UUID=bbbb-9999"},
	}}

	if err := table.Apply(plan); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read table back: %v", err)
	}
	if !strings.Contains(string(data), "UUID=bbbb-9999  /  ext4") {
		t.Error("applied edit not found in the rewritten table")
	}

	// No temp files may survive the rename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d files after Apply; want only the table", len(entries))
	}

	// The in-memory table follows the file, so a second lookup sees the edit.
	if e := table.FindEntry("/"); e == nil || e.Spec.Value != "bbbb-9999" {
		t.Errorf("in-memory table not refreshed: %+v", e)
	}
}
