package main

import (
	"os"

	"github.com/grovetools/viewpick/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:]))
}
