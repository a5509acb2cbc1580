package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clash-verge-rev/clash-verge-logging-check/pkg/logcheck"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), errOut.String(), err
}

func TestRunCheck_CleanTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/main.rs": "fn main() {}\n",
		"src/lib.rs":  "pub fn setup() {}\n",
	})

	stdout, _, err := execRoot(t, root)
	if err != nil {
		t.Fatalf("expected clean run, got: %v", err)
	}
	if code := logcheck.ExitCodeForError(err); code != logcheck.ExitSuccess {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "Scanned 2 rust files") {
		t.Errorf("missing scan summary: %q", stdout)
	}
	if !strings.Contains(stdout, "No forbidden") {
		t.Errorf("missing success line: %q", stdout)
	}
}

func TestRunCheck_ViolationsFound(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/main.rs": "fn main() {\n    log::info(\"started\");\n}\n",
	})

	stdout, stderr, err := execRoot(t, root)
	if !errors.Is(err, logcheck.ErrViolationsFound) {
		t.Fatalf("expected ErrViolationsFound, got: %v", err)
	}
	if code := logcheck.ExitCodeForError(err); code != logcheck.ExitViolationsFound {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "Found 1 forbidden logging usage(s)") {
		t.Errorf("missing violation total: %q", stdout)
	}
	if !strings.Contains(stdout, "main.rs:2:") {
		t.Errorf("missing excerpt line: %q", stdout)
	}
	// Stderr must carry the one-line summary and nothing else; in
	// particular cobra must not echo the error a second time.
	if want := "ERROR: 1 violations in 1 files. See details above.\n"; stderr != want {
		t.Errorf("stderr = %q, want exactly %q", stderr, want)
	}
}

func TestRunCheck_AllowedModuleScenario(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.rs":                 "// 1\n// 2\n// 3\n// 4\nlog::debug(\"x\")\n",
		"src/utils/logging.rs": "log::trace(\"y\")\n",
	})

	stdout, _, err := execRoot(t, root)
	if !errors.Is(err, logcheck.ErrViolationsFound) {
		t.Fatalf("expected ErrViolationsFound, got: %v", err)
	}
	if !strings.Contains(stdout, "Found 1 forbidden logging usage(s)") {
		t.Errorf("exempt file should not contribute violations: %q", stdout)
	}
	if !strings.Contains(stdout, "a.rs:5:") {
		t.Errorf("violation should point at a.rs line 5: %q", stdout)
	}
	if strings.Contains(stdout, "logging.rs:") {
		t.Errorf("exempt file leaked into the report: %q", stdout)
	}
	// Exempt files still count as scanned.
	if !strings.Contains(stdout, "Scanned 2 rust files") {
		t.Errorf("scanned count should include exempt files: %q", stdout)
	}
}

func TestRunCheck_NoCandidateFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"README.md":  "# docs with log::info in prose\n",
		"Cargo.toml": "[package]\n",
	})

	stdout, _, err := execRoot(t, root)
	if err != nil {
		t.Fatalf("expected clean run, got: %v", err)
	}
	if !strings.Contains(stdout, "Scanned 0 rust files") {
		t.Errorf("expected zero scanned files: %q", stdout)
	}
}

func TestRunCheck_MissingRoot(t *testing.T) {
	_, stderr, err := execRoot(t, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing scan root")
	}
	code := logcheck.ExitCodeForError(err)
	if code == logcheck.ExitSuccess || code == logcheck.ExitViolationsFound {
		t.Errorf("exit code = %d, want non-zero and distinct from 1", code)
	}
	if n := strings.Count(stderr, "failed to open scan root"); n != 1 {
		t.Errorf("scan failure should be reported exactly once, got %d in %q", n, stderr)
	}
	if !strings.Contains(stderr, "[ERROR] ") {
		t.Errorf("scan failure should go through the logger: %q", stderr)
	}
}

func TestRunCheck_TooManyArgs(t *testing.T) {
	_, stderr, err := execRoot(t, "a", "b")
	if !errors.Is(err, logcheck.ErrUsage) {
		t.Fatalf("expected usage error, got: %v", err)
	}
	if code := logcheck.ExitCodeForError(err); code != logcheck.ExitUsageError {
		t.Errorf("exit code = %d, want 2", code)
	}
	if n := strings.Count(stderr, "accepts at most one path argument"); n != 1 {
		t.Errorf("usage error should be reported exactly once, got %d in %q", n, stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execRoot(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(stdout, "logcheck dev") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}
