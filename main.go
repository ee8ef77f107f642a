package main

import "servo-controller/cmd"

func main() {
	cmd.Execute()
}
