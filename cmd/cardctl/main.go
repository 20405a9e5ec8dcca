package main

import "github.com/and161185/metrics-dashboard/internal/cli"

func main() {
	cli.Execute()
}
