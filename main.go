package main

import "boardsync/cmd"

func main() {
	cmd.Execute()
}
