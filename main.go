package main

import "mentiongate/cmd"

func main() {
	cmd.Execute()
}
