package main

import "github.com/slnkit/slnkit/cmd"

func main() {
	cmd.Execute()
}
