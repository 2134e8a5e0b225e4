// Package logstat reads web server access logs and summarises them: how many
// distinct clients made requests, which resources were requested most often,
// and which clients were the most active.
//
// Input is read through a Pipe, in the same way as a shell pipeline:
//
//	res, err := logstat.File("access.log").Analyze(3)
//
// If any pipe operation results in an error, the pipe's Error() method will
// return that error, and all subsequent pipe operations will be no-ops. Lines
// which don't look like access log entries are not errors: they are simply
// skipped.
package logstat

// DefaultTop is the number of entries in each ranking when the caller doesn't
// ask for a specific number.
const DefaultTop = 3

// Record is a single parsed access log line.
type Record struct {
	ClientAddress string
	Identity      string
	Timestamp     string
	Method        string
	Resource      string
	Protocol      string
	StatusCode    int
	ResponseSize  int64
}

// Count is a key (a resource or a client address) together with the number of
// records it appeared in.
type Count struct {
	Key string `json:"key" yaml:"key"`
	N   int    `json:"count" yaml:"count"`
}

// Result summarises a set of records.
type Result struct {
	UniqueClients int     `json:"unique_clients" yaml:"unique_clients"`
	Top           int     `json:"top" yaml:"top"`
	TopResources  []Count `json:"top_resources" yaml:"top_resources"`
	TopClients    []Count `json:"top_clients" yaml:"top_clients"`
}

// ParseStats describes how many lines a parse pass read, and how many of them
// became records.
type ParseStats struct {
	Lines   int
	Records int
	Skipped int
}
