// rocket - CLI application for finding reorientation insertions in Rubik's
// Cube algorithms.
package main

import (
	"github.com/Hypercubers/rocket/internal/cli"
)

func main() {
	cli.Execute()
}
