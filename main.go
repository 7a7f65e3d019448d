package main

import (
	"os"

	"github.com/ssantos/wordkids/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
