package main

import "github.com/corvidsec/waflex/cmd"

func main() {
	cmd.Execute()
}
