package model

import (
	"slices"
	"strings"
)

// OptionSet is a named group of options with a fixed capacity.
// Occupied slots always form the dense prefix of the set.
type OptionSet struct {
	name       string
	options    []*Option
	maxOptions int
}

// NewOptionSet creates an empty set that can hold up to maxOptions options.
// A non-positive capacity gives a set that never accepts an option.
func NewOptionSet(name string, maxOptions int) *OptionSet {
	return &OptionSet{
		name:       name,
		options:    make([]*Option, 0, max(maxOptions, 0)),
		maxOptions: max(maxOptions, 0),
	}
}

// Name returns the set name.
func (s *OptionSet) Name() string {
	return s.name
}

// SetName renames the set.
func (s *OptionSet) SetName(name string) {
	s.name = name
}

// Len returns the number of occupied slots.
func (s *OptionSet) Len() int {
	return len(s.options)
}

// Cap returns the fixed capacity of the set.
func (s *OptionSet) Cap() int {
	return s.maxOptions
}

// Options returns the occupied options in order.
// The returned slice is a copy; the options themselves are shared.
func (s *OptionSet) Options() []*Option {
	return slices.Clone(s.options)
}

// Option returns the option at index, counted over occupied slots only.
func (s *OptionSet) Option(index int) (*Option, bool) {
	if index < 0 || index >= len(s.options) {
		return nil, false
	}

	return s.options[index], true
}

// AddOption appends opt to the next free slot.
// It returns false, leaving the set untouched, when the set is full
// or opt is nil. Names are not checked for duplicates.
func (s *OptionSet) AddOption(opt *Option) bool {
	if opt == nil || len(s.options) >= s.maxOptions {
		return false
	}

	s.options = append(s.options, opt)
	return true
}

// FindOption returns the first option whose name matches case-insensitively.
func (s *OptionSet) FindOption(name string) (*Option, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, false
	}

	return s.options[i], true
}

// UpdateOptionPrice sets the price of the first matching option in place.
func (s *OptionSet) UpdateOptionPrice(name string, price float64) bool {
	opt, ok := s.FindOption(name)
	if !ok {
		return false
	}

	opt.SetPrice(price)
	return true
}

// DeleteOption removes the first matching option and shifts the
// following ones left, keeping their order.
func (s *OptionSet) DeleteOption(name string) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}

	// slices.Delete zeroes the vacated tail slot
	s.options = slices.Delete(s.options, i, i+1)
	return true
}

// String renders the set header and one line per option, tab indented.
func (s *OptionSet) String() string {
	var b strings.Builder

	b.WriteString("\tOption Set: ")
	b.WriteString(s.name)
	b.WriteByte('\n')

	for _, opt := range s.options {
		b.WriteString("\t\t")
		b.WriteString(opt.String())
		b.WriteByte('\n')
	}

	return b.String()
}

func (s *OptionSet) indexOf(name string) int {
	return slices.IndexFunc(s.options, func(o *Option) bool {
		return strings.EqualFold(o.name, name)
	})
}
