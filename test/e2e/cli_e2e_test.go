package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises the main CLI paths end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	tmpDir := t.TempDir()
	binName := "fibbench"
	if runtime.GOOS == "windows" {
		binName = "fibbench.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/fibbench")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build fibbench: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match, case-insensitive
		wantCode int
	}{
		{
			name:     "basic calculation",
			args:     []string{"-n", "10", "-c", "--algo", "iterative"},
			wantOut:  "F(10) = 55",
			wantCode: 0,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "comparison of all strategies",
			args:     []string{"-n", "25", "--algo", "all", "-c"},
			wantOut:  "F(25) = 75025",
			wantCode: 0,
		},
		{
			name:     "quiet mode",
			args:     []string{"-n", "10", "--quiet", "-c", "--algo", "iterative"},
			wantOut:  "55",
			wantCode: 0,
		},
		{
			name:     "timeout yields exit code 2",
			args:     []string{"-n", "200", "--algo", "recursive", "--timeout", "50ms"},
			wantOut:  "",
			wantCode: 2,
		},
		{
			name:     "verification passes",
			args:     []string{"--verify"},
			wantOut:  "reference sequence matched",
			wantCode: 0,
		},
		{
			name:     "index zero",
			args:     []string{"-n", "0", "-c", "--algo", "iterative"},
			wantOut:  "F(0) = 0",
			wantCode: 0,
		},
		{
			name:     "large index",
			args:     []string{"-n", "1000", "--algo", "iterative"},
			wantOut:  "F(1000)",
			wantCode: 0,
		},
		{
			name:     "bash completion",
			args:     []string{"--completion", "bash"},
			wantOut:  "complete -F _fibbench",
			wantCode: 0,
		},
		{
			name:     "version flag",
			args:     []string{"--version"},
			wantOut:  "fibbench",
			wantCode: 0,
		},
		{
			name:     "unknown strategy fails",
			args:     []string{"--algo", "quantum"},
			wantOut:  "",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed unexpectedly: %v\noutput: %s", err, outStr)
				}
			} else {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("expected exit code %d, got err=%v\noutput: %s", tt.wantCode, err, outStr)
				}
				if exitErr.ExitCode() != tt.wantCode {
					t.Errorf("exit code = %d, want %d\noutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, outStr)
			}
		})
	}
}