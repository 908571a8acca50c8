package main

import "plexus/weft/cmd"

func main() {
	cmd.Execute()
}
