package main

import "github.com/kozaktomas/photo-gallery/cmd"

func main() {
	cmd.Execute()
}
