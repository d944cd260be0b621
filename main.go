package main

import (
	"github.com/utec/diagram-cli/cmd"
)

func main() {
	cmd.Run()
}
