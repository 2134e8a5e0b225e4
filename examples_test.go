package logstat_test

import (
	"fmt"
	"os"

	"github.com/bitfield/logstat"
)

func ExampleParseLine() {
	r, ok := logstat.ParseLine(`177.71.128.21 - - [10/Jul/2018:22:21:28 +0200] "GET /intranet-analytics/ HTTP/1.1" 200 3574`)
	fmt.Println(ok, r.ClientAddress, r.Method, r.Resource, r.Protocol, r.StatusCode, r.ResponseSize)
	// Output:
	// true 177.71.128.21 GET /intranet-analytics/ HTTP/1.1 200 3574
}

func ExampleParse() {
	records := logstat.Parse([]string{
		"invalid line",
		`177.71.128.21 - - [10/Jul/2018:22:21:28 +0200] "GET /intranet-analytics/ HTTP/1.1" 200 3574`,
		"another invalid line",
	})
	fmt.Println(len(records))
	// Output:
	// 1
}

func ExampleTop() {
	fmt.Println(logstat.Top([]string{"A", "B", "A", "B", "C"}, 2))
	// Output:
	// [{A 2} {B 2}]
}

func ExampleAnalyze() {
	records := logstat.Parse([]string{
		`10.0.0.1 - - [t] "GET /a HTTP/1.1" 200 1`,
		`10.0.0.2 - - [t] "GET /b HTTP/1.1" 200 1`,
		`10.0.0.1 - - [t] "GET /b HTTP/1.1" 200 1`,
	})
	res := logstat.Analyze(records, 1)
	fmt.Println(res.UniqueClients, res.TopResources, res.TopClients)
	// Output:
	// 2 [{/b 2}] [{10.0.0.1 2}]
}

func ExamplePipe_Analyze() {
	res, err := logstat.File("testdata/access.log").Analyze(2)
	if err != nil {
		panic(err)
	}
	res.WriteText(os.Stdout)
	// Output:
	// Log Analysis Results
	// ===================
	//
	// Number of unique IP addresses: 6
	//
	// Top 2 most visited URLs:
	// - /intranet-analytics/: 3 visits
	// - /docs/manage-websites/: 3 visits
	//
	// Top 2 most active IP addresses:
	// - 168.41.191.40: 4 requests
	// - 177.71.128.21: 2 requests
}

func ExamplePipe_Match() {
	res, err := logstat.File("testdata/access.log").Match("/docs/").Analyze(logstat.DefaultTop)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.TopClients)
	// Output:
	// [{168.41.191.40 1} {177.71.128.21 1} {168.41.191.9 1}]
}

func ExamplePipe_JQ() {
	logstat.Echo(`{"top_clients":[{"key":"168.41.191.40","count":4}]}`).JQ(".top_clients[0].count").Stdout()
	// Output:
	// 4
}

func ExampleSlice() {
	records, err := logstat.Slice([]string{
		`72.44.32.10 - - [09/Jul/2018:15:49:48 +0200] "GET /faq/ HTTP/1.1" 200 3574`,
	}).Records()
	if err != nil {
		panic(err)
	}
	fmt.Println(records[0].Resource)
	// Output:
	// /faq/
}
