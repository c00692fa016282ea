package main

import "recipe-graph/cmd"

func main() {
	cmd.Execute()
}
