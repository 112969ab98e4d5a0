package main

import "github.com/vibast-solutions/abacatepay-go/cmd"

func main() {
	cmd.Execute()
}
