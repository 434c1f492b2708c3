package main

import "github.com/vytor/powerdrill/cmd/powerdrill/root"

func main() {
	root.Execute()
}
