package cli

import "errors"

// Error variables for argument and config handling.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrConfigFileExists   = errors.New("config file already exists")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrNoCommand          = errors.New("no command provided")
)
