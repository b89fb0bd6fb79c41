// Package dataset provides the thin I/O helpers the fixed-point codec
// consumes but does not itself implement: directory discovery, ASCII
// numeric ingest, and summary statistics. spec.md treats these as external
// collaborators rather than part of the core design, so this package stays
// deliberately unopinionated — a directory walk and a couple of
// bufio.Scanner loops, the same shape as the teacher's own file reader.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Discover returns the path (dir joined with the file name) of every file
// directly under dir whose name ends in ext (e.g. ".dat"). The paths are
// absolute only when dir is. Sub-directories are not descended into.
func Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: Discover %s: %w", dir, err)
	}
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		matches = append(matches, filepath.Join(dir, entry.Name()))
	}
	return matches, nil
}

// LoadFloats reads every whitespace-separated float32 token from path, in
// file order. This is the simulation-dump ingest path spec.md names as an
// external collaborator.
func LoadFloats(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: LoadFloats %s: %w", path, err)
	}
	defer file.Close()

	var values []float32
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 32)
		if err != nil {
			return nil, fmt.Errorf("dataset: LoadFloats %s: %w", path, err)
		}
		values = append(values, float32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: LoadFloats %s: %w", path, err)
	}
	return values, nil
}

// LoadInts reads every whitespace-separated int token from path. Mirrors
// the original source's verification-data loader, used by test fixtures
// that ship ground-truth integer values alongside a float dump.
func LoadInts(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: LoadInts %s: %w", path, err)
	}
	defer file.Close()

	var values []int
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("dataset: LoadInts %s: %w", path, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: LoadInts %s: %w", path, err)
	}
	return values, nil
}

// Stats returns the minimum, maximum and arithmetic mean of values. Stats
// of an empty slice returns all zeros.
func Stats(values []float32) (min, max, mean float32) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	min, max = values[0], values[0]
	var total float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		total += float64(v)
	}
	mean = float32(total / float64(len(values)))
	return min, max, mean
}
