package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.dat", "1 2 3")
	writeTempFile(t, dir, "b.dat", "4 5 6")
	writeTempFile(t, dir, "c.txt", "ignored")

	matches, err := Discover(dir, ".dat")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Discover found %d files, want 2: %v", len(matches), matches)
	}
}

func TestLoadFloats(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "data.dat", "1.5 -2.25 3.0\n4.75")
	values, err := LoadFloats(path)
	if err != nil {
		t.Fatalf("LoadFloats failed: %v", err)
	}
	want := []float32{1.5, -2.25, 3.0, 4.75}
	if len(values) != len(want) {
		t.Fatalf("LoadFloats = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestLoadInts(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "verify.dat", "10 20 30")
	values, err := LoadInts(path)
	if err != nil {
		t.Fatalf("LoadInts failed: %v", err)
	}
	want := []int{10, 20, 30}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestStats(t *testing.T) {
	min, max, mean := Stats([]float32{1.0, 2.0, 3.0, 4.0})
	if min != 1.0 || max != 4.0 || mean != 2.5 {
		t.Fatalf("Stats = (%v,%v,%v), want (1.0,4.0,2.5)", min, max, mean)
	}
}

func TestStatsEmpty(t *testing.T) {
	min, max, mean := Stats(nil)
	if min != 0 || max != 0 || mean != 0 {
		t.Fatalf("Stats(nil) = (%v,%v,%v), want zeros", min, max, mean)
	}
}

func TestLoadFloatsMissingFile(t *testing.T) {
	if _, err := LoadFloats(filepath.Join(t.TempDir(), "missing.dat")); err == nil {
		t.Fatal("LoadFloats on a missing file should return an error")
	}
}
