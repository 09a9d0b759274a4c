package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
