// Package main is the entry point for the fixpool CLI.
package main

import "fixpool.dev/pkg/fixpool/cmd"

func main() {
	cmd.Execute()
}
