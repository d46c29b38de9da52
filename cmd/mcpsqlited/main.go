package main

import (
	"context"
	"log"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited"
)

func main() {
	if err := mcpsqlited.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
