package main

import (
	"context"
	"log"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlitebench"
)

func main() {
	if err := mcpsqlitebench.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
