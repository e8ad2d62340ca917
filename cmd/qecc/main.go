package main

import (
	"os"

	"github.com/theapemachine/errnie"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errnie.Error(err)
		os.Exit(1)
	}
}
