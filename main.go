package main

import "github.com/rdevries/modechord/cmd"

func main() {
	cmd.Execute()
}
