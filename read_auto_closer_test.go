package logstat_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/bitfield/logstat"
)

func TestReadAutoCloser_ClosesFileAtEOF(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/access.log")
	if err != nil {
		t.Fatal(err)
	}
	input, err := os.Open("testdata/access.log")
	if err != nil {
		t.Fatal(err)
	}
	acr := logstat.NewReadAutoCloser(input)
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Error(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	_, err = io.ReadAll(acr)
	if err == nil {
		t.Error("input not closed after reading")
	}
}

func TestReadAutoCloser_WrapsNonClosableReader(t *testing.T) {
	t.Parallel()
	acr := logstat.NewReadAutoCloser(strings.NewReader("hello"))
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("want %q, got %q", "hello", got)
	}
	if err := acr.Close(); err != nil {
		t.Errorf("want nil error closing non-closable reader, got %v", err)
	}
}

func TestReadAutoCloser_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()
	var acr logstat.ReadAutoCloser
	n, err := acr.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("want 0, io.EOF, got %d, %v", n, err)
	}
	if err := acr.Close(); err != nil {
		t.Error(err)
	}
}
