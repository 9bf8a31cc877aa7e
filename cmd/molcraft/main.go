// The molcraft binary is the offline command-line interface to the
// validation engine.
package main

import (
	"os"

	"github.com/molcraft/molcraft/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
