package printers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/pouriyajamshidi/pizzaconfig/internal/utils"
	"github.com/pouriyajamshidi/pizzaconfig/model"
	"github.com/pouriyajamshidi/pizzaconfig/option"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can tell a full configuration from a single option set or an error.
type JSONEventType string

const (
	configEvent    JSONEventType = "config"    // Event type for `PrintConfig` method.
	optionSetEvent JSONEventType = "optionSet" // Event type for `PrintOptionSet` method.
	errorEvent     JSONEventType = "error"     // Event type for `PrintError` method.
)

// JSONPrice is a price that survives encoding/json even when it is not finite.
// NaN and the infinities are written as the strings "NaN", "Infinity" and
// "-Infinity", every other value as a plain JSON number.
type JSONPrice float64

// MarshalJSON implements json.Marshaler.
func (p JSONPrice) MarshalJSON() ([]byte, error) {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.AppendQuote(nil, utils.FormatDecimal(v)), nil
	}

	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *JSONPrice) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		switch text {
		case "NaN":
			*p = JSONPrice(math.NaN())
		case "Infinity":
			*p = JSONPrice(math.Inf(1))
		case "-Infinity":
			*p = JSONPrice(math.Inf(-1))
		default:
			return fmt.Errorf("invalid price %q", text)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*p = JSONPrice(v)
	return nil
}

// JSONOption is the JSON shape of a single option.
type JSONOption struct {
	Archive model.ArchiveTag `json:"archive"`
	Name    string           `json:"name"`
	Price   JSONPrice        `json:"price"`
}

// JSONOptionSet is the JSON shape of an option set.
// Options is never null, an empty set encodes as [].
type JSONOptionSet struct {
	Archive  model.ArchiveTag `json:"archive"`
	Name     string           `json:"name"`
	Capacity int              `json:"capacity"`
	Options  []JSONOption     `json:"options"`
}

// JSONConfig is the JSON shape of a whole configuration.
type JSONConfig struct {
	Archive    model.ArchiveTag `json:"archive"`
	Name       string           `json:"name"`
	BasePrice  JSONPrice        `json:"basePrice"`
	Capacity   int              `json:"capacity"`
	OptionSets []JSONOptionSet  `json:"optionSets"`
}

// JSONData contains all possible fields for JSON output.
// Only one of Config and OptionSet is set, depending on Type.
type JSONData struct {
	Type      JSONEventType  `json:"type"`
	Message   string         `json:"message"` // Message mirrors the header line of the plain printer.
	Config    *JSONConfig    `json:"config,omitempty"`
	OptionSet *JSONOptionSet `json:"optionSet,omitempty"`
}

// JSONPrinter prints one JSON document per call.
type JSONPrinter struct {
	opt          options
	shouldIndent bool
}

type JSONPrinterOption = option.Option[JSONPrinter]

func (p *JSONPrinter) options() *options {
	return &p.opt
}

// WithPrettyJSON indents the JSON output.
func WithPrettyJSON() JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.shouldIndent = true
	}
}

// NewJSONPrinter creates a new JSONPrinter instance.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *JSONPrinter) encode(data JSONData) {
	encoder := json.NewEncoder(p.opt.writer())

	if p.shouldIndent {
		encoder.SetIndent("", "\t")
	}

	if err := encoder.Encode(data); err != nil && data.Type != errorEvent {
		p.PrintError("Failed to encode %s: %v", data.Type, err)
	}
}

// PrintConfig prints the whole configuration tree.
func (p *JSONPrinter) PrintConfig(cfg *model.PizzaConfig) {
	p.encode(JSONData{
		Type:    configEvent,
		Message: fmt.Sprintf("Pizza Configuration: %s", cfg.Name()),
		Config:  NewJSONConfig(cfg),
	})
}

// PrintOptionSet prints a single option set.
func (p *JSONPrinter) PrintOptionSet(set *model.OptionSet) {
	jsonSet := NewJSONOptionSet(set)

	p.encode(JSONData{
		Type:      optionSetEvent,
		Message:   fmt.Sprintf("Option Set: %s", set.Name()),
		OptionSet: &jsonSet,
	})
}

// PrintError formats and prints an error message in JSON format.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encode(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// Done satisfies the "printer" interface but does nothing in this implementation
func (p *JSONPrinter) Done() {}

// NewJSONConfig converts a configuration to its JSON shape.
func NewJSONConfig(cfg *model.PizzaConfig) *JSONConfig {
	sets := cfg.OptionSets()

	out := &JSONConfig{
		Archive:    cfg.ArchiveTag(),
		Name:       cfg.Name(),
		BasePrice:  JSONPrice(cfg.BasePrice()),
		Capacity:   cfg.Cap(),
		OptionSets: make([]JSONOptionSet, 0, len(sets)),
	}

	for _, set := range sets {
		out.OptionSets = append(out.OptionSets, NewJSONOptionSet(set))
	}

	return out
}

// NewJSONOptionSet converts an option set to its JSON shape.
func NewJSONOptionSet(set *model.OptionSet) JSONOptionSet {
	opts := set.Options()

	out := JSONOptionSet{
		Archive:  set.ArchiveTag(),
		Name:     set.Name(),
		Capacity: set.Cap(),
		Options:  make([]JSONOption, 0, len(opts)),
	}

	for _, opt := range opts {
		out.Options = append(out.Options, JSONOption{
			Archive: opt.ArchiveTag(),
			Name:    opt.Name(),
			Price:   JSONPrice(opt.Price()),
		})
	}

	return out
}
