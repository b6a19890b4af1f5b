package printers

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/pouriyajamshidi/pizzaconfig/internal/utils"
	"github.com/pouriyajamshidi/pizzaconfig/model"
	"github.com/pouriyajamshidi/pizzaconfig/option"
)

// Color functions used when printing information
var (
	colorLightCyan  = color.LightCyan.Sprintf
	colorYellow     = color.Yellow.Sprintf
	colorLightBlue  = color.FgLightBlue.Sprintf
	colorGreen      = color.Green.Sprintf
	colorLightGreen = color.LightGreen.Sprintf
	colorRed        = color.Red.Sprintf
)

// ColorPrinter prints the same lines as PlainPrinter, with ANSI colors.
type ColorPrinter struct {
	opt options
}

type ColorPrinterOption = option.Option[ColorPrinter]

func (p *ColorPrinter) options() *options {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PrintConfig prints the configuration name in light cyan, the base price
// in yellow and then every option set.
func (p *ColorPrinter) PrintConfig(cfg *model.PizzaConfig) {
	w := p.opt.writer()

	fmt.Fprintln(w, colorLightCyan("Pizza Configuration: %s", cfg.Name()))
	fmt.Fprintln(w, colorYellow("Base Price: %s", utils.FormatDecimal(cfg.BasePrice())))
	fmt.Fprintln(w, colorLightBlue("Option Sets:"))

	for _, set := range cfg.OptionSets() {
		p.PrintOptionSet(set)
	}
}

// PrintOptionSet prints the set name in green and its options in light green.
func (p *ColorPrinter) PrintOptionSet(set *model.OptionSet) {
	w := p.opt.writer()

	fmt.Fprintln(w, colorGreen("\tOption Set: %s", set.Name()))

	for _, opt := range set.Options() {
		fmt.Fprintln(w, colorLightGreen("\t\t%s", opt))
	}
}

// PrintError prints error messages in red.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	fmt.Fprintln(p.opt.writer(), colorRed(format, args...))
}

// Done satisfies the "printer" interface but does nothing in this implementation
func (p *ColorPrinter) Done() {}
