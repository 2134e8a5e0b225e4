package logstat

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/shell"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// Exec runs an external command and returns a pipe containing its standard
// output, for example to read a log through `journalctl` or `ssh`. If the
// command had a non-zero exit status, the pipe's error status will also be set
// to an error ending in "exit status X", where X is the integer exit status.
func Exec(cmdLine string) *Pipe {
	return NewPipe().Exec(cmdLine)
}

// File returns a pipe associated with the specified log file. Files compressed
// with gzip, such as rotated logs, are decompressed transparently. If there is
// an error opening the file, the pipe's error status will be set.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(errors.Wrap(err, "opening log file"))
	}
	br := bufio.NewReader(f)
	magic, _ := br.Peek(2)
	if !bytes.Equal(magic, gzipMagic) {
		return p.WithReader(&bufferedFile{br, f})
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		f.Close()
		return p.WithError(errors.Wrapf(err, "decompressing %s", name))
	}
	return p.WithReader(&gzipFile{zr, f})
}

// Slice returns a pipe containing each element of s, one per line.
func Slice(s []string) *Pipe {
	if len(s) == 0 {
		return NewPipe()
	}
	return Echo(strings.Join(s, "\n") + "\n")
}

// Stdin returns a pipe which reads from the program's standard input.
func Stdin() *Pipe {
	return NewPipe().WithReader(os.Stdin)
}

// Exec runs cmdLine with the pipe's contents as its standard input, and returns
// a pipe containing the command's standard output. The command line is split
// into words as a POSIX shell would, but is not run by a shell.
func (p *Pipe) Exec(cmdLine string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	args, err := shell.Fields(cmdLine, nil)
	if err != nil {
		return p.WithError(errors.Wrapf(err, "parsing command %q", cmdLine))
	}
	if len(args) == 0 {
		return p.WithError(errors.New("empty command"))
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = p.Reader
	cmd.Stderr = os.Stderr
	output, err := cmd.Output()
	q := p.derive(bytes.NewReader(output))
	if err != nil {
		q.SetError(errors.Wrapf(err, "running %s", args[0]))
	}
	return q
}

var gzipMagic = []byte{0x1f, 0x8b}

// bufferedFile reads through br, which has already consumed bytes from f, and
// closes f.
type bufferedFile struct {
	br *bufio.Reader
	f  *os.File
}

func (b *bufferedFile) Read(p []byte) (int, error) {
	return b.br.Read(p)
}

func (b *bufferedFile) Close() error {
	return b.f.Close()
}

type gzipFile struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipFile) Close() error {
	g.zr.Close()
	return g.f.Close()
}
