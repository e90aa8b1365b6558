package commands

import (
	"github.com/de-tools/timelog-reporter/pkg/runtime/terminal/export"
	"github.com/de-tools/timelog-reporter/pkg/services/config"
	"github.com/de-tools/timelog-reporter/pkg/services/report"
)

// Env is shared by all subcommands. Settings and Registry are filled in by
// the root command before any subcommand runs.
type Env struct {
	Settings     *config.Settings
	ProfilesPath string
	Registry     report.Registry
	Reporter     *export.Reporter
	Writer       *export.Writer
}

func (e *Env) Profiles() (config.Registry, error) {
	return config.NewRegistry(e.ProfilesPath)
}
