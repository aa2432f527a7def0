// Package main is the entry point for the mutar CLI.
package main

import "mutar.dev/pkg/mutar/cmd"

func main() {
	cmd.Execute()
}
