package main

import "github.com/bz888/tavish/cmd"

func main() {
	cmd.Execute()
}
