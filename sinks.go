package logstat

import (
	"io"
	"os"
	"strings"
)

// Analyze reads and parses every line of the pipe, and summarises the
// resulting records as Analyze does, ranking the top n resources and clients.
// Lines which aren't access log entries are skipped.
func (p *Pipe) Analyze(n int) (Result, error) {
	records, err := p.Records()
	if err != nil {
		return Result{}, err
	}
	return Analyze(records, n), nil
}

// Lines returns the contents of the pipe as a slice of lines, without line
// terminators, and closes the pipe after reading.
func (p *Pipe) Lines() ([]string, error) {
	lines := []string{}
	p.EachLine(func(line string, out *strings.Builder) {
		lines = append(lines, line)
	})
	if err := p.Error(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Records reads and parses every line of the pipe, and returns the records for
// the lines which match, in input order. It closes the pipe after reading.
func (p *Pipe) Records() ([]Record, error) {
	records, _, err := p.RecordsWithStats()
	return records, err
}

// RecordsWithStats is like Records, but also reports how many lines were read
// and how many were skipped.
func (p *Pipe) RecordsWithStats() ([]Record, ParseStats, error) {
	if p == nil {
		return []Record{}, ParseStats{}, nil
	}
	if p.Error() != nil {
		return nil, ParseStats{}, p.Error()
	}
	defer p.Close()
	records := []Record{}
	var stats ParseStats
	scanner := newScanner(p.Reader)
	for scanner.Scan() {
		stats.Lines++
		if r, ok := ParseLine(strings.TrimSpace(scanner.Text())); ok {
			records = append(records, r)
		}
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return nil, stats, err
	}
	stats.Records = len(records)
	stats.Skipped = stats.Lines - stats.Records
	return records, stats, nil
}

// String returns the contents of the pipe as a string, and closes the pipe
// after reading.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Stdout copies the contents of the pipe to its configured standard output
// (os.Stdout unless changed with WithStdout). It returns the number of bytes
// written.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}
	defer p.Close()
	n64, err := io.Copy(w, p.Reader)
	if err != nil {
		p.SetError(err)
	}
	return int(n64), err
}
