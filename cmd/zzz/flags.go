package main

import (
	"github.com/spf13/pflag"

	"zzz/internal/suspend"
)

// modeFlag is a boolean-looking flag that selects a request when it is parsed.
// Flags are applied in command line order, so the last mode flag wins.
type modeFlag struct {
	target *suspend.Request
	value  suspend.Request
}

func (f *modeFlag) String() string { return "false" }

func (f *modeFlag) Type() string { return "bool" }

func (f *modeFlag) Set(string) error {
	*f.target = f.value
	return nil
}

func addModeFlag(fs *pflag.FlagSet, target *suspend.Request, name, shorthand, usage string, value suspend.Request) *pflag.Flag {
	flag := fs.VarPF(&modeFlag{target: target, value: value}, name, shorthand, usage)
	flag.NoOptDefVal = "true"
	return flag
}

func registerModeFlags(fs *pflag.FlagSet, target *suspend.Request) {
	addModeFlag(fs, target, "dry-run", "n", "Dry run (sleep for 5s instead of suspend/hibernate).", suspend.RequestNoop)
	addModeFlag(fs, target, "standby", "s", "Low-power idle (ACPI S1).", suspend.RequestStandby)
	addModeFlag(fs, target, "standby-legacy", "S", "Deprecated alias for -s.", suspend.RequestStandby)
	addModeFlag(fs, target, "suspend", "z", "Suspend to RAM (ACPI S3). [default for zzz(8)]", suspend.RequestSuspend)
	addModeFlag(fs, target, "hibernate", "Z", "Hibernate to disk & power off (ACPI S4). [default for ZZZ(8)]", suspend.RequestHibernate)
	addModeFlag(fs, target, "hybrid", "H", "Hibernate to disk & suspend (aka suspend-hybrid).", suspend.RequestHybridSuspend)
	addModeFlag(fs, target, "reboot", "R", "Hibernate to disk & reboot.", suspend.RequestHibernateReboot)

	_ = fs.MarkHidden("standby-legacy")
}
