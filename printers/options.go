package printers

import (
	"io"
	"os"
)

// options contains common display options shared by all printers
type options struct {
	Out io.Writer
}

type hasOptions interface {
	options() *options
}

// WithWriter sends printer output to w instead of stdout
func WithWriter[T hasOptions](w io.Writer) func(T) {
	return func(p T) {
		p.options().Out = w
	}
}

// writer is resolved on every call so that a swapped os.Stdout is honored
func (o *options) writer() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}

	return o.Out
}
