package main

import "github.com/life-is-plastic/ledger/ledger/cmd"

func main() {
	cmd.Execute()
}
