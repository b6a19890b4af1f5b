// Package testdata provides shared test helpers and fixtures.
package testdata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/pouriyajamshidi/pizzaconfig/model"
	"github.com/pouriyajamshidi/pizzaconfig/printers"
)

// Common test fixture values
const (
	TestConfigName = "Margherita"
	TestBasePrice  = 8.0
)

// MargheritaDump is what the plain printer prints for NewMargherita.
const MargheritaDump = "Pizza Configuration: Margherita\n" +
	"Base Price: 8.0\n" +
	"Option Sets:\n" +
	"\tOption Set: Size\n" +
	"\t\tOption[name=Small, price=0.0]\n" +
	"\t\tOption[name=Large, price=2.0]\n"

// NewMargherita builds a two-slot configuration with a single "Size" set
// holding Small (0.0) and Large (2.0).
func NewMargherita() *model.PizzaConfig {
	cfg := model.NewPizzaConfig(TestConfigName, 2)
	cfg.SetBasePrice(TestBasePrice)

	sizes := model.NewOptionSet("Size", 3)
	sizes.AddOption(model.NewOption("Small", 0.0))
	sizes.AddOption(model.NewOption("Large", 2.0))
	cfg.AddOptionSet(sizes)

	return cfg
}

// CaptureOutput captures stdout during function execution and returns it as a string.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	output := <-done
	os.Stdout = oldStdout

	return output
}

// CaptureJSONOutput captures and parses JSON output from stdout.
func CaptureJSONOutput(t *testing.T, fn func()) printers.JSONData {
	t.Helper()

	output := CaptureOutput(t, fn)

	var data printers.JSONData
	if err := json.Unmarshal([]byte(output), &data); err != nil {
		t.Fatalf("parse JSON: %v\nOutput: %s", err, output)
	}

	return data
}
