package main

import "github.com/botfut/botfut/cmd/maskctl/cmd"

func main() {
	cmd.Execute()
}
