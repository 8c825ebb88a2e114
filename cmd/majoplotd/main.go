package main

import (
	"log"

	"github.com/majoplot/majoplot/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
