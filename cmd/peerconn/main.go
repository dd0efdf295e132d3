package main

import "github.com/rudransh-shrivastava/peer-conn/internal/cmd"

func main() {
	cmd.Execute()
}
