// Package main enables pizzaconfig to execute as a CLI tool
package main

import (
	"os"

	"github.com/pouriyajamshidi/pizzaconfig/internal/app"
)

func main() {
	os.Exit(app.Run())
}
