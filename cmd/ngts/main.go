// Command ngts translates language-neutral IR documents into TypeScript.
package main

import (
	"os"

	"github.com/thethingsyouownendupowningyou/angular/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
