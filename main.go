package main

import "github.com/tsbridge/tsbridge/cmd"

func main() {
	cmd.Execute()
}
