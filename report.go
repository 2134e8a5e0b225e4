package logstat

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

var heading = color.New(color.Bold, color.FgCyan)

// WriteText writes a plain report of r to w, with coloured headings when
// colour is enabled (see github.com/fatih/color).
func (r Result) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	fmt.Fprintln(ew)
	heading.Fprintln(ew, "Log Analysis Results")
	fmt.Fprintln(ew, "===================")
	fmt.Fprintf(ew, "\nNumber of unique IP addresses: %d\n", r.UniqueClients)
	fmt.Fprintln(ew)
	heading.Fprintf(ew, "Top %d most visited URLs:\n", r.Top)
	for _, c := range r.TopResources {
		fmt.Fprintf(ew, "- %s: %d visits\n", c.Key, c.N)
	}
	fmt.Fprintln(ew)
	heading.Fprintf(ew, "Top %d most active IP addresses:\n", r.Top)
	for _, c := range r.TopClients {
		fmt.Fprintf(ew, "- %s: %d requests\n", c.Key, c.N)
	}
	return ew.err
}

// WriteTable writes r to w as two ASCII tables, one per ranking.
func (r Result) WriteTable(w io.Writer) error {
	ew := &errWriter{w: w}
	fmt.Fprintf(ew, "Unique clients: %d\n\n", r.UniqueClients)
	writeCountTable(ew, []string{"#", "Resource", "Visits"}, r.TopResources)
	fmt.Fprintln(ew)
	writeCountTable(ew, []string{"#", "Client", "Requests"}, r.TopClients)
	return ew.err
}

func writeCountTable(w io.Writer, header []string, counts []Count) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for i, c := range counts {
		table.Append([]string{strconv.Itoa(i + 1), c.Key, strconv.Itoa(c.N)})
	}
	table.Render()
}

// WriteJSON writes r to w as an indented JSON object.
func (r Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes r to w as a YAML document.
func (r Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// errWriter remembers the first write error, so that a sequence of writes
// can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
