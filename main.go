package main

import "appledev/cmd"

func main() {
	cmd.Execute()
}
