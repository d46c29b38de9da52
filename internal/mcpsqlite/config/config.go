package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/mcpsqlite/internal/version"
)

// Config represents the configuration for mcpsqlite.
type Config struct {
	ServerURL    string    `arg:"positional,env:MCPSQLITE_SERVER_URL" help:"URL of the mcpsqlited server in format http(s)://host:port" default:"http://localhost:8000"`
	ParsedServer ServerURL `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ClientVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	cfg.ParsedServer, err = ParseServerURL(cfg.ServerURL)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}
