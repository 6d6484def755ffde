package main

import (
	"os"

	"ringdial/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
