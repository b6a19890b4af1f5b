// Package pizzaconfig ties the configuration model to its printers.
package pizzaconfig

import (
	"errors"
	"fmt"

	"github.com/pouriyajamshidi/pizzaconfig/model"
	"github.com/pouriyajamshidi/pizzaconfig/printers"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.CSVPrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// ErrConflictingFormats is returned when more than one output format is requested.
var ErrConflictingFormats = errors.New("only one of JSON and CSV output can be selected")

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data.
type Printer interface {
	// PrintConfig prints the configuration name, its base price
	// and every occupied option set, in order.
	PrintConfig(cfg *model.PizzaConfig)

	// PrintOptionSet prints the option set name
	// followed by every occupied option, in order.
	PrintOptionSet(set *model.OptionSet)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)

	// Done flushes anything the printer buffered.
	Done()
}

// NewPrinter creates and returns an appropriate printer based on configuration
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, fmt.Errorf("--pretty has no effect without the -j flag")
	}

	if cfg.OutputJSON && cfg.OutputCSV {
		return nil, ErrConflictingFormats
	}

	switch {
	case cfg.OutputJSON:
		opts := []printers.JSONPrinterOption{}
		if cfg.PrettyJSON {
			opts = append(opts, printers.WithPrettyJSON())
		}
		return printers.NewJSONPrinter(opts...), nil

	case cfg.OutputCSV:
		return printers.NewCSVPrinter(), nil

	case cfg.NoColor:
		return printers.NewPlainPrinter(), nil

	default:
		return printers.NewColorPrinter(), nil
	}
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON bool
	PrettyJSON bool
	OutputCSV  bool
	NoColor    bool
}
