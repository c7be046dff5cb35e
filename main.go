package main

import "github.com/f0x-sketch/venice-bar-analyzer/cmd"

func main() {
	cmd.Execute()
}
