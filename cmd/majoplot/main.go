package main

import (
	"github.com/majoplot/majoplot/pkg/cli"
)

func main() {
	cli.Execute()
}
