package cmd

import (
	"fmt"
	"os"

	"github.com/shreyasren/popos-boot-health-check/config"
)

// Version is set at build time via ldflags.
var Version = "1.2.0"

// Mode selects what a run is allowed to do. Exactly one mode is active per
// run; there are no transitions mid-run.
type Mode int

const (
	ModeCheck Mode = iota
	ModeFix
	ModeInteractive
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeFix:
		return "fix"
	case ModeInteractive:
		return "interactive"
	}
	return "check"
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `boot-health-check v%s — reconcile /etc/fstab with the devices actually mounted

Usage:
  boot-health-check [MODE]

Modes:
  (none)          Check: report mismatches and hardening gaps, write nothing
  --fix           Rewrite root= on the kernel cmdline via kernelstub, then
                  rebuild initramfs and refresh the boot loader (needs root)
  --interactive   Plan minimal fstab repairs, show them, apply on confirmation
                  after an unconditional backup (needs root)

Examples:
  boot-health-check
  sudo boot-health-check --fix
  sudo boot-health-check --interactive
`, Version)
}

// parseMode maps the single positional selector onto a mode. Anything
// unrecognized falls back to Check, with a note for the report.
func parseMode(args []string) (Mode, string) {
	if len(args) == 0 {
		return ModeCheck, ""
	}
	switch args[0] {
	case "--fix", "-f", "fix":
		return ModeFix, ""
	case "--interactive", "-i", "interactive":
		return ModeInteractive, ""
	case "--help", "-h", "help":
		return ModeHelp, ""
	}
	return ModeCheck, fmt.Sprintf("unrecognized mode %q, running checks only", args[0])
}

// Run parses the mode selector and dispatches.
func Run() error {
	cfg := config.Load()
	mode, note := parseMode(os.Args[1:])
	if note != "" {
		fmt.Fprintf(os.Stderr, "boot-health-check: %s\n", note)
	}

	switch mode {
	case ModeHelp:
		printUsage()
		return nil
	case ModeFix:
		return runFix(cfg)
	case ModeInteractive:
		return runInteractive(cfg)
	}
	return runCheck(cfg)
}

// requireRoot guards the mutating modes. Read-only probing escalates its own
// identifier queries instead, so Check never needs this.
func requireRoot(mode Mode) error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("%s mode must be run as root", mode)
	}
	return nil
}
