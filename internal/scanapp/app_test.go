package scanapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestNoArgsPrintsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run(nil, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage: linscan <text> <patt>") {
		t.Fatalf("usage not printed:\n%s", out.String())
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	text := write(t, filepath.Join(dir, "t.txt"), "ACGTACGTACGT")
	patt := write(t, filepath.Join(dir, "t.patt"), "# number=2 length=4 file=x\nACGTACGA")

	var out, errBuf bytes.Buffer
	if code := Run([]string{text, patt}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	want := []string{
		"1-th pattern:\n - occs with 0 miss : 3\n - occs with 1 miss : 0\n - occs with 2 miss : 0\n",
		"2-th pattern:\n - occs with 0 miss : 0\n - occs with 1 miss : 3\n - occs with 2 miss : 0\n",
		"<occs with 0 miss>: 3\n",
		"<occs with 1 miss>: 3\n",
		"<occs with 2 miss>: 0\n",
		"<total occs>      : 6",
	}
	got := out.String()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q\n--- got ---\n%s", w, got)
		}
	}
}

func TestMalformedHeaderFails(t *testing.T) {
	dir := t.TempDir()
	text := write(t, filepath.Join(dir, "t.txt"), "ACGT")

	for name, body := range map[string]string{
		"missing number": "# length=2 file=x\nAC",
		"missing length": "# number=1 file=x\nAC",
		"truncated":      "# number=2 length=2 file=x\nAC",
		"trailing":       "# number=1 length=2 file=x\nACG",
		"not a header":   "ACGT",
	} {
		t.Run(name, func(t *testing.T) {
			patt := write(t, filepath.Join(dir, strings.ReplaceAll(name, " ", "_")), body)
			var out, errBuf bytes.Buffer
			if code := Run([]string{text, patt}, &out, &errBuf); code != 3 {
				t.Fatalf("exit %d, want 3", code)
			}
			if strings.Contains(out.String(), "total occs") {
				t.Fatalf("totals printed for a bad pattern file:\n%s", out.String())
			}
		})
	}
}

func TestPatternLongerThanText(t *testing.T) {
	dir := t.TempDir()
	text := write(t, filepath.Join(dir, "t.txt"), "AC")
	patt := write(t, filepath.Join(dir, "t.patt"), "# number=1 length=3 file=x\nACG")

	var out, errBuf bytes.Buffer
	if code := Run([]string{text, patt}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "<total occs>      : 0") {
		t.Fatalf("output:\n%s", out.String())
	}
	if !strings.Contains(errBuf.String(), "exceeds text length") {
		t.Fatalf("expected a warning, stderr=%q", errBuf.String())
	}
}

func TestProgressBar(t *testing.T) {
	t.Setenv("PIZZACHILI_PROGRESS", "true")
	dir := t.TempDir()
	text := write(t, filepath.Join(dir, "t.txt"), "ACGTACGT")
	patt := write(t, filepath.Join(dir, "t.patt"), "# number=2 length=2 file=x\nACGT")

	var out, errBuf bytes.Buffer
	if code := Run([]string{text, patt}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if strings.Count(out.String(), "-th pattern:") != 2 {
		t.Fatalf("output:\n%s", out.String())
	}
}
