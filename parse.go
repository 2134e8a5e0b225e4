package logstat

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// linePattern matches an access log line from its first character. Anything
// after the response size is ignored, so combined-format lines with referrer
// and user agent match too. Digits and word characters are Unicode classes,
// not just ASCII.
var linePattern = regexp.MustCompile(
	`^([\p{Nd}.]+)` + // client address
		` - (.*?)` + // identity
		` \[(.*?)\]` + // timestamp
		` "([\p{L}\p{N}_]+) (.*?) (.*?)"` + // method, resource, protocol
		` (\p{Nd}+)` + // status
		` (\p{Nd}+)`, // size
)

// ParseLine parses a single access log line. If the line doesn't match, the
// second result is false and the Record is the zero value. Status and size
// are any runs of decimal digits; values too large for the field are clamped
// to its maximum rather than rejected.
func ParseLine(line string) (Record, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	return Record{
		ClientAddress: m[1],
		Identity:      m[2],
		Timestamp:     m[3],
		Method:        m[4],
		Resource:      m[5],
		Protocol:      m[6],
		StatusCode:    int(parseDigits(m[7], math.MaxInt)),
		ResponseSize:  parseDigits(m[8], math.MaxInt64),
	}, true
}

// parseDigits converts a run of decimal digits, in any script, to an integer.
// The result saturates at max.
func parseDigits(s string, max int64) int64 {
	var n int64
	for _, r := range s {
		d := int64(digitValue(r))
		if n > (max-d)/10 {
			return max
		}
		n = n*10 + d
	}
	return n
}

// digitValue returns the value of the decimal digit r. Every block of digits
// in unicode.Nd runs contiguously from zero to nine.
func digitValue(r rune) int {
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	return 0
}

// Parse parses each of lines, ignoring any surrounding whitespace, and returns
// the records for the lines that match, in input order. Lines that don't match
// are skipped.
func Parse(lines []string) []Record {
	records := []Record{}
	for _, line := range lines {
		if r, ok := ParseLine(strings.TrimSpace(line)); ok {
			records = append(records, r)
		}
	}
	return records
}
