package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/pouriyajamshidi/pizzaconfig"
	"github.com/pouriyajamshidi/pizzaconfig/internal/consts"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// Config contains all configuration needed to build and print a configuration.
type Config struct {
	// Sample configuration
	Name      string
	BasePrice float64

	// OptionSet limits the output to a single option set when not empty
	OptionSet string

	// Output options
	PrinterConfig pizzaconfig.PrinterConfig
}

type options struct {
	outputJSON   *bool
	prettyJSON   *bool
	outputCSV    *bool
	noColor      *bool
	name         *string
	basePrice    *float64
	optionSet    *string
	showVer      *bool
	checkUpdates *bool
}

// newFlagSet registers every flag on a fresh FlagSet so that parsing
// and usage printing share the same definitions.
func newFlagSet() (*flag.FlagSet, options) {
	fs := flag.NewFlagSet("pizzaconfig", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{
		outputJSON: fs.Bool("j", false, "output in JSON format."),
		prettyJSON: fs.Bool("pretty",
			false,
			"use indentation when using json output format. No effect without the '-j' flag."),
		outputCSV: fs.Bool("csv", false, "output in CSV format, one record per option."),
		noColor:   fs.Bool("no-color", false, "do not colorize output."),
		name:      fs.String("name", consts.DefaultConfigName, "name of the pizza configuration."),
		basePrice: fs.Float64("base",
			consts.DefaultBasePrice,
			"base price of the pizza configuration. Real number allowed with dot as a decimal separator."),
		optionSet:    fs.String("set", "", "only print the option set with this name (case-insensitive)."),
		showVer:      fs.Bool("v", false, "show version and exit."),
		checkUpdates: fs.Bool("u", false, "check for updates and exit."),
	}

	return fs, opts
}

// ProcessUserInput parses command-line flags. Returns ErrUsageRequested,
// ErrVersionRequested, or ErrUpdateCheckRequested for special control flow.
func ProcessUserInput(args []string) (Config, error) {
	fs, opts := newFlagSet()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, ErrUsageRequested
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsageRequested, err)
	}

	if *opts.showVer {
		return Config{}, ErrVersionRequested
	}

	if *opts.checkUpdates {
		return Config{}, ErrUpdateCheckRequested
	}

	if fs.NArg() != 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrUsageRequested, fs.Args())
	}

	if *opts.name == "" {
		return Config{}, fmt.Errorf("configuration name should not be empty")
	}

	return Config{
		Name:      *opts.name,
		BasePrice: *opts.basePrice,
		OptionSet: *opts.optionSet,
		PrinterConfig: pizzaconfig.PrinterConfig{
			OutputJSON: *opts.outputJSON,
			PrettyJSON: *opts.prettyJSON,
			OutputCSV:  *opts.outputCSV,
			NoColor:    *opts.noColor,
		},
	}, nil
}
