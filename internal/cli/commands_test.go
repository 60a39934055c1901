package cli

import (
	"strings"
	"testing"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func TestSizeCmd_ArgsValidation(t *testing.T) {
	err := sizeCmd.Args(sizeCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	exitCode := pathkit.ExitCodeForError(err)
	if exitCode != pathkit.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", pathkit.ExitUsageError, exitCode, err)
	}
}

func TestSizeCmd_NonIntegerInput(t *testing.T) {
	resetSizeFlags()

	err := runSize(sizeCmd, []string{"abc"})
	if err == nil {
		t.Fatal("Expected error for non-integer byte count")
	}
	if pathkit.ExitCodeForError(err) != pathkit.ExitUsageError {
		t.Errorf("Expected usage exit code, got %d for: %v", pathkit.ExitCodeForError(err), err)
	}
}

func TestSizeCmd_NegativeInput(t *testing.T) {
	resetSizeFlags()

	err := runSize(sizeCmd, []string{"-1024"})
	if err == nil {
		t.Fatal("Expected error for negative byte count")
	}
	if !strings.Contains(err.Error(), "non-negative") {
		t.Errorf("Expected error about non-negative input, got: %v", err)
	}
}

func TestSizeCmd_InvalidOutputFormat(t *testing.T) {
	resetSizeFlags()
	sizeFlags.output = "xml"

	err := runSize(sizeCmd, []string{"1024"})
	if err == nil {
		t.Fatal("Expected error for unsupported output format")
	}
	if pathkit.ExitCodeForError(err) != pathkit.ExitUsageError {
		t.Errorf("Expected usage exit code, got %d for: %v", pathkit.ExitCodeForError(err), err)
	}
}

func TestInfoCmd_ArgsValidation(t *testing.T) {
	err := infoCmd.Args(infoCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	exitCode := pathkit.ExitCodeForError(err)
	if exitCode != pathkit.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", pathkit.ExitUsageError, exitCode, err)
	}
}

func TestInfoCmd_ArgsValidation_TooMany(t *testing.T) {
	err := infoCmd.Args(infoCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestInfoCmd_InvalidOutputFormat(t *testing.T) {
	resetInfoFlags()
	infoFlags.output = "toml"

	err := runInfo(infoCmd, []string{"/a/b/c.tar.gz"})
	if err == nil {
		t.Fatal("Expected error for unsupported output format")
	}
}

func TestAvailableCmd_ArgsValidation(t *testing.T) {
	err := availableCmd.Args(availableCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	exitCode := pathkit.ExitCodeForError(err)
	if exitCode != pathkit.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", pathkit.ExitUsageError, exitCode, err)
	}
}

func TestAvailableCmd_NonexistentDirectory(t *testing.T) {
	resetAvailableFlags()

	err := runAvailable(availableCmd, []string{"/nonexistent/path/abc123"})
	if err == nil {
		t.Fatal("Expected error for nonexistent directory")
	}
	if pathkit.ExitCodeForError(err) != pathkit.ExitDirectoryNotFound {
		t.Errorf("Expected exit code %d, got %d for: %v", pathkit.ExitDirectoryNotFound, pathkit.ExitCodeForError(err), err)
	}
}

func TestAvailableCmd_ExistingDirectory(t *testing.T) {
	resetAvailableFlags()
	tempDir := t.TempDir()
	availableFlags.name = "report.pdf"

	err := runAvailable(availableCmd, []string{tempDir})
	if err != nil {
		t.Fatalf("Expected success on an empty directory, got: %v", err)
	}
}

func TestParseByteCount(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"1024", 1024, false},
		{"98543246875", 98543246875, false},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"1K", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseByteCount(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseByteCount(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseByteCount(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func resetSizeFlags() {
	sizeFlags.precision = pathkit.DefaultSizePrecision
	sizeFlags.output = formatText
}

func resetInfoFlags() {
	infoFlags.output = formatText
}

func resetAvailableFlags() {
	availableFlags.name = ""
	availableFlags.ext = ""
}
