// Package main is the entry point for the morsel CLI.
package main

import "github.com/satishbabariya/morsel/cli/commands"

func main() {
	commands.Execute()
}
