package main

import "github.com/10igma/spacetrader-web/internal/adapters/cli"

func main() {
	cli.Execute()
}
