package main

import (
	"os"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}