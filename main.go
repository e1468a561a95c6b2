package main

import "gallerysearch/cmd"

func main() {
	cmd.Execute()
}
