// Package basics holds the pure helpers the builder demo is made of.
package basics

import "fmt"

// DefaultName is the name greeted when none is configured.
const DefaultName = "Builder"

// Greet returns a greeting for name. An empty name is accepted.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
