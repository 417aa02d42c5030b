package opts

import (
	"io"

	"github.com/spf13/afero"

	"github.com/walteh/enumfix/pkg/config"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer

	// Flags
	ConfigFile string
	Target     string
	Debug      bool
	DryRun     bool

	// Config is loaded before any command runs
	Config *config.Config
}

// TargetPath returns the --target override or the configured target
func (o *RootOpts) TargetPath() string {
	if o.Target != "" {
		return o.Target
	}
	if o.Config != nil {
		return o.Config.Target
	}
	return config.DefaultTarget
}

// IsDebug reports whether debug output was requested by flag or config
func (o *RootOpts) IsDebug() bool {
	return o.Debug || (o.Config != nil && o.Config.Debug)
}
