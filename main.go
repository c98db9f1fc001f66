package main

import "azlc/cmd"

func main() {
	cmd.Execute()
}
