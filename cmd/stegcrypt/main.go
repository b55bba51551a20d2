package main

import (
	"os"

	"stegcrypt/cmd/stegcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
