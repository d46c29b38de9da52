package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/config"
	"github.com/nsqlite/mcpsqlite/internal/sqlrow"
	"github.com/nsqlite/mcpsqlite/internal/util/sysutil"
	"github.com/peterh/liner"
)

// ToolClient is the subset of the mcpsqlite client used by the REPL.
type ToolClient interface {
	ListTables(ctx context.Context) ([]sqlrow.Row, error)
	ReadQuery(ctx context.Context, query string) ([]sqlrow.Row, error)
}

type Repl struct {
	conf        config.Config
	client      ToolClient
	ctx         context.Context
	stop        context.CancelFunc
	out         io.Writer
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	client ToolClient,
) Repl {
	return Repl{
		conf:        conf,
		client:      client,
		ctx:         ctx,
		stop:        stop,
		out:         os.Stdout,
		historyPath: filepath.Join(os.TempDir(), ".mcpsqlite_history"),
	}
}

func (r *Repl) Start() error {
	remoteURL := r.conf.ParsedServer.String()

	tables, err := r.client.ListTables(r.ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", remoteURL, err)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Connected to %s (%d tables)\n", remoteURL, len(tables))
	fmt.Fprintln(r.out, `Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Fprintln(r.out)

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			if !r.handle(r.prompt()) {
				r.Shutdown()
				return nil
			}
		}
	}
}

// handle runs a single line of input. It returns false when the user
// asked to leave.
func (r *Repl) handle(input string) bool {
	if input == "" {
		return true
	}

	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "exit", ".exit", ".quit":
		return false
	case "clear", ".clear":
		sysutil.ClearTerminal()
	case "help", ".help":
		cmdHelp(r)
	case ".tables":
		cmdTables(r)
	case ".indexes":
		cmdIndexes(r)
	case ".schema":
		cmdSchema(r)
	case ".count":
		cmdCount(r, arg)
	case ".columns":
		cmdColumns(r, arg)
	default:
		if strings.HasPrefix(input, ".") {
			fmt.Fprintln(r.out, "Unknown command, type .help for usage hints")
			return true
		}
		cmdQuery(r, input)
	}

	return true
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	prompt, err := line.Prompt("mcpsqlite> ")
	if err != nil {
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.out, "Exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(prompt)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(prompt)
}
