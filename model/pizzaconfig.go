package model

import (
	"slices"
	"strings"

	"github.com/pouriyajamshidi/pizzaconfig/internal/utils"
)

// PizzaConfig is the root of a configuration: a base price plus a
// fixed-capacity, ordered collection of option sets.
type PizzaConfig struct {
	name          string
	basePrice     float64
	optionSets    []*OptionSet
	maxOptionSets int
}

// NewPizzaConfig creates an empty configuration with a zero base price.
func NewPizzaConfig(name string, maxOptionSets int) *PizzaConfig {
	return &PizzaConfig{
		name:          name,
		optionSets:    make([]*OptionSet, 0, max(maxOptionSets, 0)),
		maxOptionSets: max(maxOptionSets, 0),
	}
}

func (c *PizzaConfig) Name() string {
	return c.name
}

func (c *PizzaConfig) SetName(name string) {
	c.name = name
}

func (c *PizzaConfig) BasePrice() float64 {
	return c.basePrice
}

func (c *PizzaConfig) SetBasePrice(price float64) {
	c.basePrice = price
}

// Len returns the number of occupied option set slots.
func (c *PizzaConfig) Len() int {
	return len(c.optionSets)
}

// Cap returns the fixed option set capacity.
func (c *PizzaConfig) Cap() int {
	return c.maxOptionSets
}

// OptionSets returns a copy of the occupied option sets in order.
func (c *PizzaConfig) OptionSets() []*OptionSet {
	return slices.Clone(c.optionSets)
}

// OptionSet returns the option set at index, counted over occupied slots only.
func (c *PizzaConfig) OptionSet(index int) (*OptionSet, bool) {
	if index < 0 || index >= len(c.optionSets) {
		return nil, false
	}

	return c.optionSets[index], true
}

// AddOptionSet appends set, or returns false when the configuration is full
// or set is nil.
func (c *PizzaConfig) AddOptionSet(set *OptionSet) bool {
	if set == nil || len(c.optionSets) >= c.maxOptionSets {
		return false
	}

	c.optionSets = append(c.optionSets, set)
	return true
}

// FindOptionSet returns the first option set whose name matches case-insensitively.
func (c *PizzaConfig) FindOptionSet(name string) (*OptionSet, bool) {
	i := c.indexOf(name)
	if i < 0 {
		return nil, false
	}

	return c.optionSets[i], true
}

// ReplaceOptionSet swaps the first matching option set for set as a whole.
// Unlike OptionSet.UpdateOptionPrice nothing is merged: the old set and all
// of its options are dropped from the configuration. A nil set is refused.
func (c *PizzaConfig) ReplaceOptionSet(name string, set *OptionSet) bool {
	if set == nil {
		return false
	}

	i := c.indexOf(name)
	if i < 0 {
		return false
	}

	c.optionSets[i] = set
	return true
}

// DeleteOptionSet removes the first matching option set, keeping the order
// of the remaining ones.
func (c *PizzaConfig) DeleteOptionSet(name string) bool {
	i := c.indexOf(name)
	if i < 0 {
		return false
	}

	c.optionSets = slices.Delete(c.optionSets, i, i+1)
	return true
}

// String renders the full configuration dump.
func (c *PizzaConfig) String() string {
	var b strings.Builder

	b.WriteString("Pizza Configuration: ")
	b.WriteString(c.name)
	b.WriteString("\nBase Price: ")
	b.WriteString(utils.FormatDecimal(c.basePrice))
	b.WriteString("\nOption Sets:\n")

	for _, set := range c.optionSets {
		b.WriteString(set.String())
	}

	return b.String()
}

func (c *PizzaConfig) indexOf(name string) int {
	return slices.IndexFunc(c.optionSets, func(s *OptionSet) bool {
		return strings.EqualFold(s.name, name)
	})
}
