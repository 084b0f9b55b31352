package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/chronid/chronid/internal/config"
	"github.com/chronid/chronid/pkg/id"
	"github.com/chronid/chronid/pkg/log"
)

func testLogger() log.Logger {
	return log.NewLogger(
		log.WithLevel(log.ErrorLevel),
		log.WithOutput(log.NewWriterOutput(io.Discard)),
	)
}

func TestGenerate_PrintsRequestedCount(t *testing.T) {
	cmd := NewGenerateCommand(config.Default(), testLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--count", "5"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 output lines, got %d", len(lines))
	}
	seen := map[string]bool{}
	for _, line := range lines {
		if _, err := id.Parse(line); err != nil {
			t.Fatalf("output %q is not a valid id: %v", line, err)
		}
		if seen[line] {
			t.Fatalf("duplicate id %q", line)
		}
		seen[line] = true
	}
}

func TestGenerate_OutputIsSorted(t *testing.T) {
	cmd := NewGenerateCommand(config.Default(), testLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-n", "100"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i-1] >= lines[i] {
			t.Fatalf("line %d not increasing: %q >= %q", i, lines[i-1], lines[i])
		}
	}
}

func TestGenerate_JSONIncludesFields(t *testing.T) {
	cmd := NewGenerateCommand(config.Default(), testLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--count", "1", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var info idInfo
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	parsed, err := id.Parse(info.ID)
	if err != nil {
		t.Fatalf("json id invalid: %v", err)
	}
	if parsed.Timestamp() != info.Timestamp || parsed.Entropy() != info.Entropy {
		t.Fatalf("decoded fields disagree with id: %+v", info)
	}
}

func TestGenerate_RejectsBadCount(t *testing.T) {
	cmd := NewGenerateCommand(config.Default(), testLogger())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--count", "0"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for --count 0")
	}
}

func TestInspect_DecodesKnownID(t *testing.T) {
	v := id.MustFromFields(1_700_000_000_000, 17, 42, 0xdeadbeef)

	cmd := NewInspectCommand(config.Default(), testLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{v.String()})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"id:         " + v.String(),
		"timestamp:  1700000000000",
		"counter_hi: 17",
		"counter_lo: 42",
		"entropy:    3735928559",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestInspect_AcceptsUppercase(t *testing.T) {
	v := id.MustFromFields(123456, 1, 2, 3)
	cmd := NewInspectCommand(config.Default(), testLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{strings.ToUpper(v.String()), "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var info idInfo
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if info.ID != v.String() {
		t.Fatalf("canonical form = %q, want %q", info.ID, v.String())
	}
}

func TestInspect_RejectsMalformed(t *testing.T) {
	cmd := NewInspectCommand(config.Default(), testLogger())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"not-an-id"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRoot_RegistersCommands(t *testing.T) {
	root := NewRoot(config.Default(), testLogger())
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	if !names["generate"] || !names["inspect"] {
		t.Fatalf("missing subcommands: %v", names)
	}
}
