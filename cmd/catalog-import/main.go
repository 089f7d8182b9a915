package main

import "filmhub/cmd/catalog-import/command"

func main() {
	command.Execute()
}
