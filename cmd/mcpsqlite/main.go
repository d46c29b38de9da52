package main

import (
	"context"
	"log"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite"
)

func main() {
	if err := mcpsqlite.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
