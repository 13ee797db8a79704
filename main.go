package main

import "github.com/iburimskiy/hackpage/cmd"

func main() {
	cmd.Execute()
}
