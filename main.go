package main

import "github.com/papapumpkin/shapelist/cmd"

func main() {
	cmd.Execute()
}
