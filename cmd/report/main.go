package main

import "report-srv/internal/cli"

func main() {
	cli.Execute()
}
