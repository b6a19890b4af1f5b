// Package consts provides constants and utility variables for this project,
// including version information and color printing utilities.
package consts

import "github.com/gookit/color"

// Version is set at compile time
var Version = ""

// GitHub repository queried when checking for updates.
// Both are set at compile time, e.g.
// -ldflags "-X .../internal/consts.Owner=acme -X .../internal/consts.Repo=pizzaconfig"
var (
	Owner = ""
	Repo  = ""
)

// Defaults for the sample configuration printed by the CLI
const (
	DefaultConfigName = "Margherita"
	DefaultBasePrice  = 8.0
)

// Color functions used when printing information
var (
	ColorYellow    = color.Yellow.Printf
	ColorGreen     = color.Green.Printf
	ColorRed       = color.Red.Printf
	ColorCyan      = color.Cyan.Printf
	ColorLightCyan = color.LightCyan.Printf
)
