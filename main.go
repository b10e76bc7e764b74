package main

import "bulk-manager/cmd"

func main() {
	cmd.Execute()
}
