package main

import "github.com/theirongolddev/savr/cmd"

func main() {
	cmd.Execute()
}
