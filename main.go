package main

import "github.com/will-rowe/anise/cmd"

func main() {
	cmd.Execute()
}
