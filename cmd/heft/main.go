package main

import (
	"errors"
	"fmt"
	"os"

	"heft/internal/archive"
	"heft/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

// Exit statuses follow BSD sysexits: 65 for malformed or incomplete archive
// metadata, 74 for referenced files that cannot be read back from disk.
const (
	exitGeneric = 1
	exitDataErr = 65
	exitIOErr   = 74
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitGeneric)
	}

	if cfg.TrustedProjectConfigPath != "" {
		fmt.Fprintf(os.Stderr, "warning: using trusted project config from %s\n", cfg.TrustedProjectConfigPath)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(exitStatus(err))
	}
}

func exitStatus(err error) int {
	var integrityErr *archive.IntegrityError
	if errors.As(err, &integrityErr) {
		return exitIOErr
	}
	var refErr *archive.ReferenceError
	if errors.As(err, &refErr) {
		return exitIOErr
	}
	var layoutErr *archive.LayoutError
	if errors.As(err, &layoutErr) {
		return exitDataErr
	}
	var formatErr *archive.FormatError
	if errors.As(err, &formatErr) {
		return exitDataErr
	}
	return exitGeneric
}
