package main

import "github.com/nestegg-dev/nestegg/cmd"

func main() {
	cmd.Execute()
}
