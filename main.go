// Package main is the entry point for the sdkui CLI application.
package main

import "sdkui/cmd"

func main() {
	cmd.Execute()
}
