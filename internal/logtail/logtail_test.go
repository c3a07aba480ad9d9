package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "handydiet.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read partial wraps ring (3)", maxLines: 3, expected: expectedAll[7:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestFormat(t *testing.T) {
	stamp := time.Unix(1791970200, 0).Format(TimeLayout)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "panic: something went wrong",
			expected: "panic: something went wrong",
		},
		{
			name:     "broken json passes through",
			input:    `{"level":"info"`,
			expected: `{"level":"info"`,
		},
		{
			name:     "info with logger and fields",
			input:    `{"level":"info","ts":1791970200.123,"logger":"ui","caller":"app/load.go:21","msg":"dataset loaded","days":7}`,
			expected: stamp + " INFO  [ui] dataset loaded days=7",
		},
		{
			name:     "error with quoted field",
			input:    `{"level":"error","ts":1791970200,"msg":"dataset load failed","error":"api returned status 500"}`,
			expected: stamp + ` ERROR dataset load failed error="api returned status 500"`,
		},
		{
			name:     "fields sorted, nested values as json",
			input:    `{"level":"debug","msg":"opened","path":"/tmp/x","backend":"sqlite","opts":{"wal":true}}`,
			expected: `DEBUG opened backend=sqlite opts={"wal":true} path=/tmp/x`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatLines(t *testing.T) {
	input := []string{
		`{"level":"warn","msg":"overrides entry dropped","key":"selections"}`,
		"goroutine 1 [running]:",
	}
	expected := []string{
		"WARN  overrides entry dropped key=selections",
		"goroutine 1 [running]:",
	}
	if got := FormatLines(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("FormatLines() = %q, want %q", got, expected)
	}
}
