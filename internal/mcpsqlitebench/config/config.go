package config

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/alexflint/go-arg"
	mcpconfig "github.com/nsqlite/mcpsqlite/internal/mcpsqlite/config"
	"github.com/nsqlite/mcpsqlite/internal/version"
)

// Config represents the configuration for mcpsqlitebench.
type Config struct {
	ServerURL    string              `arg:"positional,env:MCPSQLITEBENCH_SERVER_URL" help:"URL of the mcpsqlited server in format http(s)://host:port" default:"http://localhost:8000"`
	Inserts      int                 `arg:"--inserts,env:MCPSQLITEBENCH_INSERTS" help:"Number of rows inserted through read_query" default:"10000"`
	Reads        int                 `arg:"--reads,env:MCPSQLITEBENCH_READS" help:"Number of read_query and list_tables calls" default:"1000"`
	Concurrency  int                 `arg:"--concurrency,env:MCPSQLITEBENCH_CONCURRENCY" help:"Number of in-flight requests" default:"10"`
	Table        string              `arg:"--table,env:MCPSQLITEBENCH_TABLE" help:"Name of the table created, filled and dropped by the benchmark" default:"mcpsqlitebench_users"`
	Keep         bool                `arg:"--keep,env:MCPSQLITEBENCH_KEEP" help:"Keep the benchmark table after finishing" default:"false"`
	ParsedServer mcpconfig.ServerURL `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.BenchVersion())
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

func validate(cfg *Config) error {
	parsed, err := mcpconfig.ParseServerURL(cfg.ServerURL)
	if err != nil {
		return err
	}
	cfg.ParsedServer = parsed

	if err := validatePositive("inserts", cfg.Inserts); err != nil {
		return err
	}
	if err := validatePositive("reads", cfg.Reads); err != nil {
		return err
	}
	if err := validatePositive("concurrency", cfg.Concurrency); err != nil {
		return err
	}
	if err := validateTable(cfg.Table); err != nil {
		return err
	}

	return nil
}

func validatePositive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be greater than 0", name)
	}
	return nil
}

var tableRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateTable(table string) error {
	if !tableRegex.MatchString(table) {
		return errors.New("table must contain only letters, digits and underscores")
	}
	return nil
}
