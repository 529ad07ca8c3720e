package main

import "github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/cmd"

func main() {
	cmd.Execute()
}
