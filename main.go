package main

import "tripkit/cmd"

func main() {
	cmd.Execute()
}
