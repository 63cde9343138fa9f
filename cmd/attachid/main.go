package main

import (
	"os"

	"github.com/hashicorp-forge/attachid/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
