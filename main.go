package main

import "qimgshrink/cmd"

func main() {
	cmd.Execute()
}
