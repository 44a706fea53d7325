// Command syncctl runs syncs and schema migrations from an operator shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "syncctl:", err)
		os.Exit(1)
	}
}
