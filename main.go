package main

import "showcase/cmd"

func main() {
	cmd.Execute()
}
