// Command prismpython is the standalone launcher for the Prismview embedded
// Python interpreter. Every argument passes through to the interpreter's
// own command line, except the launcher flags -v/-vv (diagnostics
// verbosity), --enable-bt (stack trace on fatal errors) and -V (print the
// host version before the interpreter's own).
//
// The interpreter installation is described by a profile, found via the
// PRISMVIEW_PROFILE environment variable, ./prismpython.yaml, or
// ~/.config/prismview/prismpython.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prismview/pyhost/config"
	pywazero "github.com/prismview/pyhost/infrastructure/wazero"
	"github.com/prismview/pyhost/interpreter"
	"github.com/prismview/pyhost/log"
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "prismpython [arg...]",
	Short: "Run the Prismview embedded Python interpreter",
	// The interpreter owns the argument surface; nothing is parsed here.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func run(cmd *cobra.Command, args []string) error {
	prof, err := config.Load(os.Getenv("PRISMVIEW_PROFILE"))
	if err != nil {
		return err
	}
	log.SetVerbosity(prof.Verbosity)

	binary, err := os.ReadFile(prof.Module)
	if err != nil {
		return fmt.Errorf("read interpreter module: %w", err)
	}

	rt := pywazero.New(
		pywazero.WithModuleBinary(binary),
		pywazero.WithMountDir(prof.Mount),
		pywazero.WithHome(prof.Home),
		pywazero.WithContext(cmd.Context()),
	)
	ctx := interpreter.NewContext(rt)
	interpreter.InitGlobal(ctx)
	ctx.SetCaptureStdin(prof.CaptureStdin)
	for _, dir := range prof.Paths {
		ctx.PrependPythonPath(dir)
	}

	exitCode = ctx.RunMain(args)
	ctx.Finalize()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "prismpython:", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
