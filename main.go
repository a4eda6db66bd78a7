package main

import "github.com/mdslide/mdslide/cmd"

func main() {
	cmd.Execute()
}
