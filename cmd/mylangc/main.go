// Command mylangc is the ahead-of-time MyLang compiler: source in, NASM out.
package main

import (
	"fmt"
	"os"

	"mylangc/cmd/mylangc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
