//go:build !windows

package logstat_test

import (
	"fmt"
	"os/exec"
	"testing"

	"github.com/bitfield/logstat"
	"github.com/google/go-cmp/cmp"
)

func TestExecReadsLogFromCommandOutput(t *testing.T) {
	t.Parallel()
	want, err := logstat.File("testdata/access.log").Analyze(logstat.DefaultTop)
	if err != nil {
		t.Fatal(err)
	}
	got, err := logstat.Exec("cat testdata/access.log").Analyze(logstat.DefaultTop)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestExecHandlesQuotedArguments(t *testing.T) {
	t.Parallel()
	p := logstat.Exec(`sh -c 'echo "1.2.3.4 - - [t] \"GET /x HTTP/1.1\" 200 1"'`)
	records, err := p.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Resource != "/x" {
		t.Errorf("want one record for /x, got %+v", records)
	}
}

func TestExecPipesDataToExternalCommand(t *testing.T) {
	t.Parallel()
	records, err := logstat.File("testdata/access.log").Exec("grep 177.71.128.21").Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("want 2 records, got %d", len(records))
	}
}

func TestExecSetsExitStatusOnFailure(t *testing.T) {
	t.Parallel()
	p := logstat.Exec("sh -c 'exit 3'")
	if p.Error() == nil {
		t.Fatal("want error from failing command, got nil")
	}
	if p.ExitStatus() != 3 {
		t.Errorf("want exit status 3, got %d", p.ExitStatus())
	}
}

func TestExitStatusFindsWrappedCommandError(t *testing.T) {
	t.Parallel()
	err := exec.Command("sh", "-c", "exit 4").Run()
	if err == nil {
		t.Fatal("want error from failing command, got nil")
	}
	p := logstat.NewPipe().WithError(fmt.Errorf("%w (while tailing access.log)", err))
	if p.ExitStatus() != 4 {
		t.Errorf("want exit status 4, got %d", p.ExitStatus())
	}
}

func TestExecErrorsOnUnterminatedQuote(t *testing.T) {
	t.Parallel()
	p := logstat.Exec("sh -c 'echo oh no")
	if p.Error() == nil {
		t.Error("want error running command line containing unterminated string")
	}
}

func TestExecErrorsOnEmptyCommand(t *testing.T) {
	t.Parallel()
	if p := logstat.Exec("   "); p.Error() == nil {
		t.Error("want error running empty command")
	}
}
