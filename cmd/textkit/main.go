package main

import (
	"github.com/NVIDIA/textkit/pkg/cli"
)

func main() {
	cli.Execute()
}
