package main

import "github/chapool/agent-tipjar/cmd"

func main() {
	cmd.Execute()
}
