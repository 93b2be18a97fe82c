// Command lvalgo runs the lvalgo algorithms from the command line.
//
//	lvalgo merge 1,4,5 1,3,4 2,6
//	lvalgo merge --file lists.yaml --stable
//	lvalgo schedule --file jobs.yaml
//	lvalgo nato "SOS 1"
//	lvalgo traverse --order in 1,2,3,null,4
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// runner carries the output writer and logger shared by all commands.
type runner struct {
	out    io.Writer
	logger *logrus.Logger
}

// newApp builds the CLI. Results go to out, logs to errOut. Errors are
// returned from Run instead of exiting the process.
func newApp(out, errOut io.Writer) *cli.App {
	logger := logrus.New()
	logger.SetOutput(errOut)
	r := &runner{out: out, logger: logger}

	return &cli.App{
		Name:      "lvalgo",
		Usage:     "merge sorted lists, schedule jobs and run small classic algorithms",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (trace, debug, info, warn, error)",
				EnvVars: []string{"LVALGO_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "emit logs as JSON",
				EnvVars: []string{"LVALGO_LOG_JSON"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			if c.Bool("log-json") {
				logger.SetFormatter(&logrus.JSONFormatter{})
			}
			return nil
		},
		Commands: []*cli.Command{
			r.mergeCommand(),
			r.rotateCommand(),
			r.csortCommand(),
			r.tsearchCommand(),
			r.jugglerCommand(),
			r.natoCommand(),
			r.scheduleCommand(),
			r.traverseCommand(),
		},
		// commands log their own failures; main decides the exit code
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
