package main

import "github.com/tagmate/tagmate/cmd"

func main() {
	cmd.Execute()
}
