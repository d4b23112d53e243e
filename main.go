package main

import "github.com/coxswain-io/coxswain/cmd"

func main() {
	cmd.Execute()
}
