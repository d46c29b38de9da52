package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"regexp"
	"strconv"
	"time"

	"github.com/alexflint/go-arg"
	mlog "github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/version"
)

// Config represents the configuration for mcpsqlited.
type Config struct {
	DbPath      string        `arg:"--db-path,required,env:MCPSQLITE_DB_PATH" help:"Path to the SQLite database file, parent directories are created if missing"`
	ListenAddr  string        `arg:"--listen-addr,env:MCPSQLITE_LISTEN_ADDR" help:"Address for the server to listen on" default:"0.0.0.0"`
	ListenPort  string        `arg:"--listen-port,env:MCPSQLITE_LISTEN_PORT" help:"Port for the server to listen on" default:"8000"`
	BusyTimeout time.Duration `arg:"--busy-timeout,env:MCPSQLITE_BUSY_TIMEOUT" help:"How long a statement waits on a locked database. Valid time units are ns, us (or µs), ms, s, m, h" default:"5s"`
	ForeignKeys bool          `arg:"--foreign-keys,env:MCPSQLITE_FOREIGN_KEYS" help:"Enforce foreign key constraints" default:"false"`
	MaxBodySize int64         `arg:"--max-body-size,env:MCPSQLITE_MAX_BODY_SIZE" help:"Maximum request body size in bytes, 0 disables the limit" default:"10485760"`
	LogLevel    string        `arg:"--log-level,env:MCPSQLITE_LOG_LEVEL" help:"Minimum log level (debug, info, warn, error)" default:"info"`

	ParsedLogLevel slog.Level `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ServerVersion())
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

	if err := validate(&cfg); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validate checks every field and fills the parsed ones.
func validate(cfg *Config) error {
	if cfg.DbPath == "" {
		return errors.New("database path is required")
	}
	if err := validateListenAddr(cfg.ListenAddr); err != nil {
		return err
	}
	if err := validateListenPort(cfg.ListenPort); err != nil {
		return err
	}
	if err := validateBusyTimeout(cfg.BusyTimeout); err != nil {
		return err
	}
	if cfg.MaxBodySize < 0 {
		return errors.New("invalid max body size, must not be negative")
	}

	level, err := mlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	cfg.ParsedLogLevel = level

	return nil
}

// validateListenAddr validates if addr is a valid ip address.
func validateListenAddr(addr string) error {
	if net.ParseIP(addr) == nil {
		return errors.New("invalid listen address")
	}
	return nil
}

// validateListenPort validates if port is a valid port number.
func validateListenPort(port string) error {
	re := regexp.MustCompile(`^\d{1,5}$`)
	if !re.MatchString(port) {
		return errors.New("invalid listen port, valid values are 1-65535")
	}
	n, _ := strconv.Atoi(port)
	if n < 1 || n > 65535 {
		return errors.New("invalid listen port, valid values are 1-65535")
	}
	return nil
}

// validateBusyTimeout validates if timeout is greater than zero.
func validateBusyTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errors.New("invalid busy timeout, must be greater than zero")
	}
	return nil
}
