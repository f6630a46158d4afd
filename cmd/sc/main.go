package main

import "github.com/talha426/Shadow-Console-Track/cmd/sc/root"

func main() {
	root.Execute()
}
