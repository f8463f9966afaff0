package main

import (
	"os"

	"github.com/idilsaglam/lucky/internal/cli"
)

func main() {
	// No flags: settings come from LUCKY_* env vars and lucky.yaml.
	os.Exit(cli.Run(cli.Options{}))
}
