package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RepoRoot returns the directory containing go.mod, searching upward from
// the working directory.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found")
		}
		dir = parent
	}
}

// BuildBin builds the repo-local package at pkgPath into a binary named
// outName under a per-test temp dir and returns its path.
func BuildBin(t *testing.T, outName, pkgPath string) string {
	t.Helper()
	root := RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), outName)
	cmd := exec.Command("go", "build", "-o", outPath, pkgPath)
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s failed: %v\n%s", pkgPath, err, string(out))
	}
	return outPath
}
