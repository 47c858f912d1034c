package main

import "github.com/mchmarny/agentctl/pkg/cli"

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

func main() {
	cli.Execute(version, commit, date)
}
