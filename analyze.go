package logstat

import "sort"

// Analyze summarises records: the number of distinct client addresses, and
// the n most requested resources and n most active clients. It does not
// modify records, and calling it twice on the same records gives equal
// results.
func Analyze(records []Record, n int) Result {
	resources := make([]string, len(records))
	clients := make([]string, len(records))
	for i, r := range records {
		resources[i] = r.Resource
		clients[i] = r.ClientAddress
	}
	return Result{
		UniqueClients: UniqueClients(records),
		Top:           n,
		TopResources:  Top(resources, n),
		TopClients:    Top(clients, n),
	}
}

// UniqueClients returns the number of distinct client addresses in records.
func UniqueClients(records []Record) int {
	seen := map[string]struct{}{}
	for _, r := range records {
		seen[r.ClientAddress] = struct{}{}
	}
	return len(seen)
}

// Top counts the occurrences of each distinct key, and returns the n most
// frequent keys in descending order of count. Keys with equal counts appear in
// the order they were first seen in keys. If there are fewer than n distinct
// keys, all of them are returned. If n is zero or negative, the result is
// empty.
func Top(keys []string, n int) []Count {
	if n <= 0 {
		return []Count{}
	}
	// counts is in first-seen order; the stable sort keeps it that way among
	// equal counts.
	index := map[string]int{}
	counts := []Count{}
	for _, k := range keys {
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, Count{Key: k})
		}
		counts[i].N++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	if len(counts) > n {
		counts = counts[:n:n]
	}
	return counts
}
