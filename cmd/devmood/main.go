// devmood is a terminal mood board for developers
package main

import (
	"os"

	"github.com/iiroan/devmood/cmd/devmood/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
