package main

import "github.com/mohamed566-11/sqrew/internal/cli"

func main() {
	cli.Execute()
}
