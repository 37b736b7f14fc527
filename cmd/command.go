// Package cmd The command line tool for running pngpress.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/pngpress/config"
	zlog "github.com/go-imsto/pngpress/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: pngpress %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Default Usage:\n")
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	os.Exit(2)
}

// main
var (
	exitStatus = 0
	exitMu     sync.Mutex

	current *config.Config
)

var commands = []*Command{
	cmdCompress,
	cmdWalk,
	cmdAttr,
}

// runs when no command is named
const defaultCommand = "compress"

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func logger() zlog.Logger {
	return zlog.Get()
}

func Main() {
	flag.Usage = func() { usage(2) }
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 && args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		for _, cmd := range commands {
			if cmd.Name() == args[1] {
				tmpl(os.Stdout, helpTemplate, cmd)
				return
			}
		}
		usage(2)
	}

	var err error
	current, err = config.Load()
	if err != nil {
		errorf("load config: %s", err)
		os.Exit(2)
	}

	build := zap.NewProduction
	if current.Develop {
		build = zap.NewDevelopment
	}
	logger := newLogger(build)
	logger.Debug("logger start")
	atExit(func() { logger.Sync() }) // flushes buffer, if any
	zlog.Set(logger.Sugar())

	initSentry(current.SentryDSN)

	if len(args) == 0 {
		args = []string{defaultCommand}
	}

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			cmd.Flag.Parse(args[1:])
			args = cmd.Flag.Args()

			if !cmd.Run(args) {
				fmt.Fprintf(os.Stderr, "\n")
				cmd.Flag.Usage()
			}
			exit()
			return
		}
	}

	errorf("unknown command %q\nRun 'pngpress help' for usage.\n", args[0])
	setExitStatus(2)
	exit()
}

// newLogger falls back to a no-op logger when build fails.
func newLogger(build func(...zap.Option) (*zap.Logger, error)) *zap.Logger {
	logger, err := build()
	if err != nil || logger == nil {
		errorf("init logger: %v", err)
		return zap.NewNop()
	}
	return logger
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: pngpress [command] [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Without a command, compress runs with the configured defaults.
Use "pngpress help [command]" for more information.
`

var helpTemplate = `usage: pngpress {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	fmt.Fprintln(os.Stderr, "version ", config.Version)
	tmpl(os.Stderr, usageTemplate, commands)
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

var atExitFuncs []func()

func atExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}
