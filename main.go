package main

import "github.com/retirmentaudit/retirement-audit-launch/cmd"

func main() {
	cmd.Execute()
}
