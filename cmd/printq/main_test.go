package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"print-optimizer-service/internal/config"
	"print-optimizer-service/internal/domain"
	"print-optimizer-service/internal/report"

	"github.com/fatih/color"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg := config.Config{
		MaxVolume: config.DefaultMaxVolume,
		MaxItems:  config.DefaultMaxItems,
		RodMethod: config.RodMethodBoth,
	}
	cmd := newRootCmd(cfg)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestScheduleCommandJSON(t *testing.T) {
	out, err := runCLI(t, "schedule", "--json",
		"--job", "M1:100:1:120",
		"--job", "M2:150:1:90",
		"--job", "M3:120:1:150",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got report.ScheduleResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if strings.Join(got.PrintOrder, ",") != "M2,M1,M3" {
		t.Errorf("print order = %v, want [M2 M1 M3]", got.PrintOrder)
	}
	if got.TotalTime != 270 {
		t.Errorf("total time = %v, want 270", got.TotalTime)
	}
}

func TestScheduleCommandUnschedulable(t *testing.T) {
	_, err := runCLI(t, "schedule", "--max-volume", "100", "--job", "BIG:150:1:10")
	if !errors.Is(err, domain.ErrUnschedulableJob) {
		t.Fatalf("err = %v, want ErrUnschedulableJob", err)
	}
}

func TestScheduleCommandBadJobFlag(t *testing.T) {
	if _, err := runCLI(t, "schedule", "--job", "M1:100:1"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRodcutCommandBoth(t *testing.T) {
	out, err := runCLI(t, "rodcut", "--json", "--length", "5", "--prices", "2,5,7,8,10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []report.CuttingResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want memo and table", len(got))
	}
	for _, c := range got {
		if c.MaxProfit != 12 {
			t.Errorf("%s: max profit = %v, want 12", c.Method, c.MaxProfit)
		}
	}
}

func TestRodcutCommandSingleMethodText(t *testing.T) {
	out, err := runCLI(t, "rodcut", "--method", "table", "--length", "3", "--prices", "1,3,8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Maximum profit: 8") {
		t.Errorf("output %q missing profit", out)
	}
	if strings.Contains(out, "(memo)") {
		t.Errorf("output %q should only contain the table method", out)
	}
}

func TestRodcutCommandInvalidInput(t *testing.T) {
	_, err := runCLI(t, "rodcut", "--length", "4", "--prices", "1,2")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRodcutCommandUnknownMethod(t *testing.T) {
	if _, err := runCLI(t, "rodcut", "--method", "greedy", "--length", "1", "--prices", "1"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
}

func TestDemoCommand(t *testing.T) {
	out, err := runCLI(t, "demo", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got report.DemoResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got.Schedules) != 3 {
		t.Errorf("schedules = %d, want 3", len(got.Schedules))
	}
	// Three rod scenarios, each solved by both methods.
	if len(got.Cuttings) != 6 {
		t.Errorf("cuttings = %d, want 6", len(got.Cuttings))
	}
}

func TestParseJob(t *testing.T) {
	job, err := parseJob(" M7 : 12.5 : 3 : 45 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.PrintJob{ID: "M7", Volume: 12.5, Priority: 3, PrintTime: 45}
	if job != want {
		t.Errorf("job = %+v, want %+v", job, want)
	}

	for _, raw := range []string{"M1:x:1:1", "M1:1:x:1", "M1:1:1:x", "M1"} {
		if _, err := parseJob(raw); err == nil {
			t.Errorf("parseJob(%q): expected error", raw)
		}
	}
}
