// Package app runs the pizzaconfig command line tool.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/pouriyajamshidi/pizzaconfig"
	"golang.org/x/term"
)

// Run executes the pizzaconfig application and returns an exit code
func Run() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	config, err := ProcessUserInput(args)
	if err != nil {
		return handleError(err, nil)
	}

	if !config.PrinterConfig.NoColor && !stdoutIsTerminal() {
		config.PrinterConfig.NoColor = true
	}

	printer, err := pizzaconfig.NewPrinter(config.PrinterConfig)
	if err != nil {
		return handleError(err, nil)
	}
	defer printer.Done()

	cfg := SampleConfig(config.Name, config.BasePrice)

	if config.OptionSet == "" {
		printer.PrintConfig(cfg)
		return 0
	}

	set, ok := cfg.FindOptionSet(config.OptionSet)
	if !ok {
		return handleError(fmt.Errorf("option set %q not found in %q", config.OptionSet, cfg.Name()), printer)
	}

	printer.PrintOptionSet(set)
	return 0
}

// stdoutIsTerminal reports whether colors can be rendered on stdout
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func handleError(err error, printer pizzaconfig.Printer) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsageRequested) {
		PrintUsage()
		return 1
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion()
		return 0
	}

	if errors.Is(err, ErrUpdateCheckRequested) {
		msg, checkErr := CheckForUpdates()
		if checkErr != nil {
			printError(checkErr, printer)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	printError(err, printer)
	return 1
}

func printError(err error, printer pizzaconfig.Printer) {
	if printer != nil {
		printer.PrintError("%v", err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
