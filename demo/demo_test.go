package demo

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

func TestOutput_Canonical(t *testing.T) {
	for _, engine := range Engines() {
		t.Run(engine.String(), func(t *testing.T) {
			got, err := Output(engine, Input(1, 5))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "[2][4]" {
				t.Errorf("got %q, want %q", got, "[2][4]")
			}
		})
	}
}

func TestOutput_EnginesAgree(t *testing.T) {
	inputs := [][]int{
		nil,
		{2},
		{1, 3, 5},
		{10, 11, 12, -4},
		Input(1, 50),
	}
	for _, in := range inputs {
		want, err := Output(EnginePull, in)
		if err != nil {
			t.Fatalf("pull: unexpected error: %v", err)
		}
		for _, engine := range []Engine{EnginePush, EngineStaged} {
			got, err := Output(engine, in)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", engine, err)
			}
			if got != want {
				t.Errorf("input %v: %s = %q, pull = %q", in, engine, got, want)
			}
		}
	}
}

func TestOutput_EmptyAndOddOnly(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"empty", nil},
		{"odd only", []int{1, 3, 5}},
	}
	for _, tc := range tests {
		for _, engine := range Engines() {
			t.Run(tc.name+"/"+engine.String(), func(t *testing.T) {
				got, err := Output(engine, tc.input)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != "" {
					t.Errorf("got %q, want empty output", got)
				}
			})
		}
	}
}

func TestRun_UnknownEngine(t *testing.T) {
	err := Run(context.Background(), Engine("lazy"), Input(1, 2), func(rune) {})
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("got %v, want INVALID_INPUT", err)
	}
}

func TestRunner_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	r := NewRunner(nil, log)

	if _, err := r.Output(context.Background(), EngineStaged, Input(1, 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"engine":"staged"`) {
		t.Errorf("expected an engine field, got %q", out)
	}
	if !strings.Contains(out, "pipeline run started") {
		t.Errorf("expected the staged run log, got %q", out)
	}
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{"pull", EnginePull, false},
		{" PUSH ", EnginePush, false},
		{"Staged", EngineStaged, false},
		{"lazy", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseEngine(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseEngine(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseEngines(t *testing.T) {
	tests := []struct {
		in      string
		want    []Engine
		wantErr bool
	}{
		{"", Engines(), false},
		{"all", Engines(), false},
		{"ALL", Engines(), false},
		{"staged,pull", []Engine{EngineStaged, EnginePull}, false},
		{"pull,bogus", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseEngines(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseEngines(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestBracketAndIsEven(t *testing.T) {
	if got := Bracket(-3); got != "[-3]" {
		t.Errorf("Bracket(-3) = %q, want [-3]", got)
	}
	if !IsEven(0) || !IsEven(-2) || IsEven(7) {
		t.Error("IsEven disagrees with n%2 == 0")
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"ascending", 1, 3, []int{1, 2, 3}},
		{"reversed is empty", 3, 1, nil},
		{"ends at max int", math.MaxInt - 1, math.MaxInt, []int{math.MaxInt - 1, math.MaxInt}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Input(tc.from, tc.to)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestRunner_RecordsEmittedElements(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()
	m, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(m, logger.Nop())
	for _, engine := range Engines() {
		if _, err := r.Output(context.Background(), engine, Input(1, 5)); err != nil {
			t.Fatalf("%s: unexpected error: %v", engine, err)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "stream.elements" {
				continue
			}
			for _, dp := range md.Data.(metricdata.Sum[int64]).DataPoints {
				engine, _ := dp.Attributes.Value(observability.AttrEngine)
				got[engine.AsString()] += dp.Value
			}
		}
	}
	// "[2][4]" is six runes, whatever the input length.
	for _, engine := range Engines() {
		if got[engine.String()] != 6 {
			t.Errorf("%s: stream.elements = %d, want 6", engine, got[engine.String()])
		}
	}
}
