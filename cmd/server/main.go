package main

import "github.com/cbmworship/songlibrary/cmd/server/cmd"

func main() {
	cmd.Execute()
}
