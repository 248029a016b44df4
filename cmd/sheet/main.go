// Command sheet drives the sheet axis engine headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sheet/cmd/sheet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
