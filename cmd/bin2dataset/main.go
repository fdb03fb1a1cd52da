package main

import "github.com/anupcshan/bin2dataset/cmd/bin2dataset/cmd"

func main() {
	cmd.Execute()
}
