// Package model holds the pizza configuration entities: option sets
// of priced options grouped under a single configuration.
package model

import (
	"fmt"

	"github.com/pouriyajamshidi/pizzaconfig/internal/utils"
)

// Option is a named, priced choice inside an OptionSet.
// Price is a surcharge over the configuration's base price.
type Option struct {
	name  string
	price float64
}

// NewOption creates an Option. Empty names and negative prices are accepted.
func NewOption(name string, price float64) *Option {
	return &Option{name: name, price: price}
}

// Name returns the option name with its original casing.
func (o *Option) Name() string {
	return o.name
}

// SetName renames the option.
func (o *Option) SetName(name string) {
	o.name = name
}

// Price returns the surcharge of the option.
func (o *Option) Price() float64 {
	return o.price
}

// SetPrice changes the surcharge of the option.
func (o *Option) SetPrice(price float64) {
	o.price = price
}

// String renders the option as Option[name=<name>, price=<price>].
func (o *Option) String() string {
	return fmt.Sprintf("Option[name=%s, price=%s]", o.name, utils.FormatDecimal(o.price))
}
