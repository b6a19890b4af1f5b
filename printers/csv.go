package printers

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pouriyajamshidi/pizzaconfig/internal/utils"
	"github.com/pouriyajamshidi/pizzaconfig/model"
	"github.com/pouriyajamshidi/pizzaconfig/option"
)

const (
	colConfiguration string = "Configuration"
	colBasePrice     string = "Base Price"
	colOptionSet     string = "Option Set"
	colOption        string = "Option"
	colPrice         string = "Price"
)

// CSVPrinter writes one record per option.
// An option set without options still gets a record, with empty option columns.
type CSVPrinter struct {
	writer        *csv.Writer
	opt           options
	withoutHeader bool
	headerDone    bool
}

type CSVPrinterOption = option.Option[CSVPrinter]

func (p *CSVPrinter) options() *options {
	return &p.opt
}

// WithoutHeader skips the header record.
func WithoutHeader() CSVPrinterOption {
	return func(p *CSVPrinter) {
		p.withoutHeader = true
	}
}

// NewCSVPrinter creates a new CSVPrinter instance.
func NewCSVPrinter(opts ...CSVPrinterOption) *CSVPrinter {
	p := &CSVPrinter{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *CSVPrinter) csvWriter() *csv.Writer {
	if p.writer == nil {
		p.writer = csv.NewWriter(p.opt.writer())
	}

	return p.writer
}

func (p *CSVPrinter) writeHeader() error {
	if p.withoutHeader || p.headerDone {
		return nil
	}

	headers := []string{
		colConfiguration,
		colBasePrice,
		colOptionSet,
		colOption,
		colPrice,
	}

	if err := p.csvWriter().Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	p.headerDone = true
	return nil
}

// setRecords builds the records of an option set, prefixed with the
// configuration columns.
func setRecords(cfgName, basePrice string, set *model.OptionSet) [][]string {
	opts := set.Options()
	if len(opts) == 0 {
		return [][]string{{cfgName, basePrice, set.Name(), "", ""}}
	}

	records := make([][]string, 0, len(opts))
	for _, opt := range opts {
		records = append(records, []string{
			cfgName,
			basePrice,
			set.Name(),
			opt.Name(),
			utils.FormatDecimal(opt.Price()),
		})
	}

	return records
}

func (p *CSVPrinter) writeRecords(records [][]string) {
	if err := p.writeHeader(); err != nil {
		p.PrintError("Failed to write header: %v", err)
		return
	}

	if err := p.csvWriter().WriteAll(records); err != nil {
		p.PrintError("Failed to write records: %v", err)
	}
}

// PrintConfig writes a record for every option of every option set.
// A configuration without option sets produces a single record.
func (p *CSVPrinter) PrintConfig(cfg *model.PizzaConfig) {
	basePrice := utils.FormatDecimal(cfg.BasePrice())

	sets := cfg.OptionSets()
	if len(sets) == 0 {
		p.writeRecords([][]string{{cfg.Name(), basePrice, "", "", ""}})
		return
	}

	var records [][]string
	for _, set := range sets {
		records = append(records, setRecords(cfg.Name(), basePrice, set)...)
	}

	p.writeRecords(records)
}

// PrintOptionSet writes the records of a single option set,
// leaving the configuration columns empty.
func (p *CSVPrinter) PrintOptionSet(set *model.OptionSet) {
	p.writeRecords(setRecords("", "", set))
}

// PrintError logs an error message to stderr.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "CSV Error: "+format+"\n", args...)
}

// Done flushes the buffer of the writer
func (p *CSVPrinter) Done() {
	if p.writer != nil {
		p.writer.Flush()
	}
}
