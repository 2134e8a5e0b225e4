package logstat

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/itchyny/gojq"
	"github.com/pkg/errors"
)

// EachLine calls the specified function for each line of input, passing it the
// line as a string, and a *strings.Builder to write its output to. The return
// value from EachLine is a pipe containing the contents of the strings.Builder.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := newScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return p
	}
	return p.derive(strings.NewReader(output.String()))
}

// JQ reads JSON from the pipe, runs the jq query on it, and returns a pipe
// containing the results, one JSON value per line. If the query is invalid, or
// the input isn't JSON, the pipe's error status is set.
func (p *Pipe) JQ(query string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return p.WithError(errors.Wrapf(err, "parsing jq query %q", query))
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return p.WithError(errors.Wrapf(err, "compiling jq query %q", query))
	}
	defer p.Close()
	var input interface{}
	if err := json.NewDecoder(p.Reader).Decode(&input); err != nil && err != io.EOF {
		return p.WithError(errors.Wrap(err, "decoding jq input"))
	}
	output := strings.Builder{}
	enc := json.NewEncoder(&output)
	enc.SetEscapeHTML(false)
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return p.WithError(err)
		}
		if err := enc.Encode(v); err != nil {
			return p.WithError(err)
		}
	}
	return p.derive(strings.NewReader(output.String()))
}

// Match keeps only the lines containing s, such as a client address or a
// resource path.
func (p *Pipe) Match(s string) *Pipe {
	return p.keepLines(func(line string) bool {
		return strings.Contains(line, s)
	})
}

// MatchRegexp keeps only the lines matching re.
func (p *Pipe) MatchRegexp(re *regexp.Regexp) *Pipe {
	return p.keepLines(re.MatchString)
}

// Reject drops the lines containing s, such as requests for a health check
// path.
func (p *Pipe) Reject(s string) *Pipe {
	return p.keepLines(func(line string) bool {
		return !strings.Contains(line, s)
	})
}

// RejectRegexp drops the lines matching re.
func (p *Pipe) RejectRegexp(re *regexp.Regexp) *Pipe {
	return p.keepLines(func(line string) bool {
		return !re.MatchString(line)
	})
}

// keepLines passes on each line for which keep returns true, unchanged.
func (p *Pipe) keepLines(keep func(string) bool) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if keep(line) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	})
}

// newScanner returns a line scanner for r which accepts lines of any length.
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	return scanner
}
