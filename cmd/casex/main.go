package main

import (
	"os"

	"github.com/msto63/mdwx/cmd/casex/cmd"
	mdwerror "github.com/msto63/mdwx/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
