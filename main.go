// Package main is the entry point for the lanoma CLI.
package main

import "lanoma.dev/pkg/lanoma/cmd"

func main() {
	cmd.Execute()
}
