// Package printers contains the logic for printing pizza configurations
package printers

import (
	"fmt"
	"io"

	"github.com/pouriyajamshidi/pizzaconfig/model"
	"github.com/pouriyajamshidi/pizzaconfig/option"
)

// PlainPrinter prints configurations in the plain text dump format.
type PlainPrinter struct {
	opt options
}

type PlainPrinterOption = option.Option[PlainPrinter]

func (p *PlainPrinter) options() *options {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PrintConfig prints the configuration header, its base price and every option set.
func (p *PlainPrinter) PrintConfig(cfg *model.PizzaConfig) {
	io.WriteString(p.opt.writer(), cfg.String())
}

// PrintOptionSet prints a single option set and its options.
func (p *PlainPrinter) PrintOptionSet(set *model.OptionSet) {
	io.WriteString(p.opt.writer(), set.String())
}

// PrintError prints error messages.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), format+"\n", args...)
}

// Done satisfies the "printer" interface but does nothing in this implementation
func (p *PlainPrinter) Done() {}
