package engine

import (
	"strings"
	"testing"

	"github.com/shreyasren/popos-boot-health-check/fstab"
	"github.com/shreyasren/popos-boot-health-check/model"
)

func TestBuildPlanRootRepair(t *testing.T) {
	// Scenario: stale root UUID, real UUID resolvable.
	e := entry("/", "UUID=AAAA-1111", "ext4", "defaults", 1)
	dev := model.RealDevice{DevicePath: "/dev/sda2", UUID: "BBBB-2222", Mounted: true}
	obs := &Observations{
		Root: MountState{Name: "root", Entry: e, Device: dev, Mismatch: Classify(e, dev)},
	}

	plan := BuildPlan(obs)
	if len(plan.Edits) != 1 {
		t.Fatalf("plan has %d edits; want 1", len(plan.Edits))
	}
	edit := plan.Edits[0]
	if edit.Mountpoint != "/" || edit.Field != model.FieldSpec || edit.NewValue != "UUID=BBBB-2222" {
		t.Errorf("edit = %+v; want / spec UUID=BBBB-2222", edit)
	}
}

func TestBuildPlanRootAlwaysUUID(t *testing.T) {
	// Deliberate asymmetry: even a PARTUUID-addressed root row is repaired to
	// the filesystem UUID, matching the historical repair behavior.
	e := entry("/", "PARTUUID=pppp-01", "ext4", "defaults", 1)
	dev := model.RealDevice{DevicePath: "/dev/sda2", UUID: "BBBB-2222", PartUUID: "qqqq-02", Mounted: true}
	obs := &Observations{
		Root: MountState{Name: "root", Entry: e, Device: dev, Mismatch: Classify(e, dev)},
	}

	plan := BuildPlan(obs)
	if len(plan.Edits) != 1 {
		t.Fatalf("plan has %d edits; want 1", len(plan.Edits))
	}
	if plan.Edits[0].NewValue != "UUID=BBBB-2222" {
		t.Errorf("root repair = %q; want UUID=BBBB-2222", plan.Edits[0].NewValue)
	}
}

func TestBuildPlanEspPreservesNamespace(t *testing.T) {
	e := entry("/boot/efi", "PARTUUID=1234", "vfat", "umask=0077", 0)
	dev := model.RealDevice{DevicePath: "/dev/sda1", UUID: "CCCC", PartUUID: "5678", Mounted: true}
	obs := &Observations{
		Esp: MountState{Name: "ESP", Entry: e, Device: dev, Mismatch: Classify(e, dev), Finding: Audit(e)},
	}

	plan := BuildPlan(obs)
	if len(plan.Edits) != 1 {
		t.Fatalf("plan has %d edits; want 1: %+v", len(plan.Edits), plan.Edits)
	}
	if plan.Edits[0].NewValue != "PARTUUID=5678" {
		t.Errorf("ESP repair = %q; a PARTUUID row stays PARTUUID", plan.Edits[0].NewValue)
	}
}

func TestBuildPlanNeverWritesEmptyIdentifier(t *testing.T) {
	// A mismatch whose repair value is unavailable plans no spec edit.
	e := entry("/boot/efi", "PARTUUID=1234", "vfat", "umask=0077", 0)
	dev := model.RealDevice{DevicePath: "/dev/sda1", Mounted: true}
	obs := &Observations{
		Esp: MountState{
			Name: "ESP", Entry: e, Device: dev,
			Mismatch: &model.Mismatch{Mountpoint: "/boot/efi", Kind: model.SpecPartUUID, Configured: "1234", Actual: "stale"},
			Finding:  Audit(e),
		},
	}

	plan := BuildPlan(obs)
	for _, edit := range plan.Edits {
		if edit.Field == model.FieldSpec {
			t.Errorf("planned spec edit %+v with no real identifier available", edit)
		}
	}
}

func TestBuildPlanHardening(t *testing.T) {
	// Scenario: identifier matches, hardening does not.
	e := entry("/boot/efi", "UUID=DEAD", "vfat", "defaults", 1)
	dev := model.RealDevice{DevicePath: "/dev/sda1", UUID: "DEAD", Mounted: true}
	obs := &Observations{
		Esp: MountState{Name: "ESP", Entry: e, Device: dev, Mismatch: Classify(e, dev), Finding: Audit(e)},
	}

	plan := BuildPlan(obs)
	if len(plan.Edits) != 2 {
		t.Fatalf("plan has %d edits; want options and pass: %+v", len(plan.Edits), plan.Edits)
	}
	if plan.Edits[0].Field != model.FieldOptions || plan.Edits[0].NewValue != "defaults,umask=0077" {
		t.Errorf("options edit = %+v; want defaults,umask=0077 with existing tokens kept", plan.Edits[0])
	}
	if plan.Edits[1].Field != model.FieldPass || plan.Edits[1].NewValue != "0" {
		t.Errorf("pass edit = %+v; want 0", plan.Edits[1])
	}
}

func TestBuildPlanRecoveryAbsent(t *testing.T) {
	// Scenario: no recovery row at all. Valid layout, no findings, no edits.
	obs := &Observations{
		Recovery: MountState{Name: "recovery"},
	}
	if plan := BuildPlan(obs); !plan.Empty() {
		t.Errorf("plan = %+v; an absent entry plans nothing", plan.Edits)
	}
}

func TestBuildPlanEmptyIsValid(t *testing.T) {
	e := entry("/", "UUID=AAAA", "ext4", "defaults", 1)
	dev := model.RealDevice{DevicePath: "/dev/sda2", UUID: "AAAA", Mounted: true}
	obs := &Observations{
		Root: MountState{Name: "root", Entry: e, Device: dev, Mismatch: Classify(e, dev)},
	}
	if plan := BuildPlan(obs); !plan.Empty() {
		t.Errorf("plan = %+v; want empty", plan.Edits)
	}
}

// TestRepairIdempotence drives a full repair cycle through the table rewrite
// and verifies a second reconciliation against the same device state plans
// nothing.
func TestRepairIdempotence(t *testing.T) {
	table := &fstab.Table{Path: "/etc/fstab", Lines: strings.Split(
		"UUID=AAAA-1111  /  ext4  defaults  0  1\n"+
			"UUID=DEAD  /boot/efi  vfat  defaults  0  1", "\n")}

	rootDev := model.RealDevice{DevicePath: "/dev/sda2", UUID: "BBBB-2222", Mounted: true}
	espDev := model.RealDevice{DevicePath: "/dev/sda1", UUID: "DEAD", Mounted: true}

	inspect := func() *Observations {
		root := table.FindEntry("/")
		esp := table.FindEntry("/boot/efi")
		return &Observations{
			Table:    table,
			Root:     MountState{Name: "root", Entry: root, Device: rootDev, Mismatch: Classify(root, rootDev)},
			Esp:      MountState{Name: "ESP", Entry: esp, Device: espDev, Mismatch: Classify(esp, espDev), Finding: Audit(esp)},
			Recovery: MountState{Name: "recovery"},
		}
	}

	first := BuildPlan(inspect())
	if first.Empty() {
		t.Fatal("first pass planned nothing; the fixture should need repairs")
	}

	content, err := table.Render(first)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	table.Lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	second := BuildPlan(inspect())
	if !second.Empty() {
		t.Errorf("second pass planned %+v; want an empty plan", second.Edits)
	}
}
