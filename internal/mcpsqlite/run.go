package mcpsqlite

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/client"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/config"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/repl"
	"github.com/nsqlite/mcpsqlite/internal/version"
)

// Run runs the mcpsqlite REPL.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.ClientVersion())

	c := client.NewClient(conf.ParsedServer, nil)

	rp := repl.NewRepl(ctx, stop, conf, &c)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
