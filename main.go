package main

import (
	"os"

	"github.com/osbuild/osbuild-cfg/cmd"
	"github.com/osbuild/osbuild-cfg/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
