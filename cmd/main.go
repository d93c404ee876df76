package main

import (
	"github.com/adventvm/go-intcode/pkg/cmd"
)

func main() {
	cmd.Execute()
}
