package main

import "word-mcp-launcher/cmd"

func main() {
	cmd.Execute()
}
