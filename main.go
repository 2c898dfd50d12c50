package main

import "github.com/reform-tech/user-api/cmd"

func main() {
	cmd.Execute()
}
