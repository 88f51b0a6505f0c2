package main

import "github.com/hmmm42/lancetgo/cmd"

func main() {
	cmd.Execute()
}
