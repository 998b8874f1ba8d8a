package main

import "couple-wellness-backend/cmd"

func main() {
	cmd.Run()
}
