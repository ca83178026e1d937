// Package main is the entry point for the graphsniper CLI.
package main

import "graphsniper.dev/pkg/graphsniper/cmd"

func main() {
	cmd.Execute()
}
