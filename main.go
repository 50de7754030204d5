package main

import "github.com/llehouerou/wavesq/internal/cli"

func main() {
	cli.Execute()
}
