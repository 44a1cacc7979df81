package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

func TestNewParsesArguments(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{"fibbench", "-n", "42", "--algo", "iterative"}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if application.Config.N != 42 {
		t.Errorf("N = %d, want 42", application.Config.N)
	}
	if application.Config.Algo != "iterative" {
		t.Errorf("Algo = %q, want %q", application.Config.Algo, "iterative")
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"fibbench", "--algo", "quantum"}, &errBuf)
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if IsHelpError(err) {
		t.Error("unknown strategy must not be reported as a help request")
	}
}

func TestNewHelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"fibbench", "--help"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("expected help error, got %v", err)
	}
}

func TestRunCompletionMode(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"fibbench", "--completion", "bash"}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "complete -F _fibbench") {
		t.Errorf("missing completion script in output: %q", out.String())
	}
}

func TestRunQuietCalculation(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"fibbench", "-q", "-n", "10", "--algo", "iterative", "--no-color"}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, apperrors.ExitSuccess, errBuf.String())
	}
	if out.String() != "55\n" {
		t.Errorf("quiet output = %q, want %q", out.String(), "55\n")
	}
}

func TestRunComparisonAgreement(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"fibbench", "-n", "20", "-c", "--no-color"}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "F(20) = 6765") {
		t.Errorf("missing result in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Comparison Summary") {
		t.Errorf("missing comparison table in output:\n%s", out.String())
	}
}

func TestRunVerifyMode(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"fibbench", "--verify", "-q", "--no-color"}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if !strings.HasPrefix(line, "PASS ") {
			t.Errorf("unexpected verification line %q", line)
		}
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"-n", "10", "--version"}) {
		t.Error("--version not detected")
	}
	if HasVersionFlag([]string{"-n", "10"}) {
		t.Error("false positive version detection")
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "fibbench ") {
		t.Errorf("unexpected version output %q", out.String())
	}
}
