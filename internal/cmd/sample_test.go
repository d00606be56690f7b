package cmd

import (
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	values := []float64{0.5, -0.25, 1, 0}

	if err := writeCSV(&sb, values, 2); err != nil {
		t.Fatalf("writeCSV failed: %v", err)
	}

	want := "0.5,-0.25\n1,0\n"
	if sb.String() != want {
		t.Errorf("writeCSV output = %q, want %q", sb.String(), want)
	}
}

func TestWriteCSVRejectsRaggedRows(t *testing.T) {
	var sb strings.Builder
	if err := writeCSV(&sb, []float64{1, 2, 3}, 2); err == nil {
		t.Error("expected error for length not divisible by width")
	}
	if err := writeCSV(&sb, []float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero width")
	}
}
