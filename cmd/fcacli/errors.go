package main

import "errors"

var (
	errConfigFileRead = errors.New("cannot read config file")
	errConfigInvalid  = errors.New("invalid config file")
	errNoSubcommand   = errors.New("no subcommand given")
	errUnknownCommand = errors.New("unknown subcommand")
)
