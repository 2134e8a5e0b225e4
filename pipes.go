package logstat

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
)

// Pipe carries log lines from a source, such as a file or a command, through
// filters to a sink which parses or reports on them. Each pipe also has an
// error status. Once that is set, every later stage passes the pipe through
// untouched, and the sink returns the error, so a chain of calls only needs
// checking once at the end.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns an empty pipe which writes to os.Stdout.
func NewPipe() *Pipe {
	return &Pipe{stdout: os.Stdout}
}

// Close releases the log source behind the pipe. Sinks do this themselves, so
// it's only needed when a pipe is abandoned part way through.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the pipe's error status, or nil if no stage has failed.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

var exitStatusPattern = regexp.MustCompile(`exit status (\d+)$`)

// ExitStatus reports how the command behind an Exec source exited. It returns
// zero if the pipe has no error, or if the error didn't come from a command's
// non-zero exit.
func (p *Pipe) ExitStatus() int {
	err := p.Error()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	m := exitStatusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	status, _ := strconv.Atoi(m[1])
	return status
}

// Read makes a pipe an io.Reader over its remaining log data. A nil pipe reads
// as empty.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError records err as the pipe's error status. Setting a non-nil error
// also closes the log source, since nothing more will be read from it.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithReader makes r the pipe's log source. If r is an io.ReadCloser, it is
// closed once it has been read to the end.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout sends anything the pipe prints to w instead of os.Stdout.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError is SetError for use in a chain of calls.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// derive returns the pipe for the next stage, which reads r and keeps p's
// output writer.
func (p *Pipe) derive(r io.Reader) *Pipe {
	q := NewPipe().WithReader(r)
	if p != nil && p.stdout != nil {
		q.stdout = p.stdout
	}
	return q
}
