package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bitfield/logstat"
	"github.com/fatih/color"
)

const usage = `logstat summarises a web server access log: the number of distinct
clients, the most requested resources, and the most active clients.

Usage:
  logstat [options] [FILE]
  COMMAND | logstat [options]
  logstat -exec 'ssh web1 cat /var/log/nginx/access.log' [options]

FILE may be compressed with gzip. With no FILE, or when FILE is -, the log is
read from standard input.

Options:
`

type renderer func(logstat.Result, io.Writer) error

var renderers = map[string]renderer{
	"text":  logstat.Result.WriteText,
	"table": logstat.Result.WriteTable,
	"json":  logstat.Result.WriteJSON,
	"yaml":  logstat.Result.WriteYAML,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("logstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	top := fs.Int("top", logstat.DefaultTop, "number of resources and clients to list")
	format := fs.String("format", "text", "output format: text, table, json, or yaml")
	jq := fs.String("jq", "", "run this jq `query` on the JSON report")
	execCmd := fs.String("exec", "", "read the log from the output of this `command`")
	match := fs.String("match", "", "only analyse lines containing this `string`")
	reject := fs.String("reject", "", "skip lines containing this `string`")
	configPath := fs.String("config", defaultConfigPath, "read settings from this TOML `file`")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	verbose := fs.Bool("v", false, "report how many lines were read and skipped")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	cfg, err := loadConfig(*configPath, set["config"])
	if err != nil {
		fmt.Fprintln(stderr, "logstat:", err)
		return 1
	}
	if !set["top"] && cfg.Top != nil {
		*top = *cfg.Top
	}
	if !set["format"] && cfg.Format != "" {
		*format = cfg.Format
	}
	if *noColor || (cfg.Color != nil && !*cfg.Color) {
		color.NoColor = true
	}

	if *top < 0 {
		fmt.Fprintf(stderr, "logstat: -top must not be negative, got %d\n", *top)
		return 2
	}
	if fs.NArg() > 1 || (fs.NArg() == 1 && *execCmd != "") {
		fs.Usage()
		return 2
	}
	render, ok := renderers[*format]
	if !ok {
		fmt.Fprintf(stderr, "logstat: unknown format %q\n", *format)
		return 2
	}

	var p *logstat.Pipe
	switch {
	case *execCmd != "":
		p = logstat.Exec(*execCmd)
	case fs.NArg() == 0 || fs.Arg(0) == "-":
		p = logstat.Stdin()
	default:
		p = logstat.File(fs.Arg(0))
	}
	if *match != "" {
		p = p.Match(*match)
	}
	if *reject != "" {
		p = p.Reject(*reject)
	}
	records, stats, err := p.RecordsWithStats()
	if err != nil {
		fmt.Fprintln(stderr, "logstat:", err)
		if status := p.ExitStatus(); status != 0 {
			return status
		}
		return 1
	}
	if *verbose {
		fmt.Fprintf(stderr, "logstat: read %d lines, parsed %d records, skipped %d\n",
			stats.Lines, stats.Records, stats.Skipped)
	}

	result := logstat.Analyze(records, *top)
	if *jq != "" {
		buf := &bytes.Buffer{}
		if err := result.WriteJSON(buf); err != nil {
			fmt.Fprintln(stderr, "logstat:", err)
			return 1
		}
		if _, err := logstat.Echo(buf.String()).WithStdout(stdout).JQ(*jq).Stdout(); err != nil {
			fmt.Fprintln(stderr, "logstat:", err)
			return 1
		}
		return 0
	}
	if err := render(result, stdout); err != nil {
		fmt.Fprintln(stderr, "logstat:", err)
		return 1
	}
	return 0
}
