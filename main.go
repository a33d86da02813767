package main

import "github.com/narasux/goarticle/cmd"

func main() {
	cmd.Execute()
}
