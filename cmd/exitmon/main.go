package main

import "polymarket-exit-monitor/internal/cli"

func main() {
	cli.Execute()
}
