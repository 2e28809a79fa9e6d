package main

import "github.com/crystaldolphin/aquarium-mcp/cmd"

func main() {
	cmd.Execute()
}
