// Package main provides the CLI entrypoint for mrm2dfdl.
//
// mrm2dfdl converts IBM MRM message set definitions into DFDL schemas:
//   - Loads the message set tree
//   - Resolves every field type through the type table
//   - Builds the DFDL model with global properties and provenance annotations
//   - Writes the schema as indented XML
package main

import (
	"os"

	"mrm2dfdl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
