// SPDX-License-Identifier: MIT

// lvlin scores how locally linear a model is around a batch of instances.
package main

import (
	"os"

	"github.com/katalvlaran/lvlin/cmd/lvlin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
