package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/pakkit/internal/testutil"
)

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name        string
		key         byte
		jobs        int
		only        []string
		wantFiles   []string
		wantMissing []string
		wantContain []string
	}{
		{
			name:        "plain archive",
			wantFiles:   []string{"properties/resources.xml", "images/ball.png", "levels/empty.dat", "readme.txt"},
			wantContain: []string{"Extracted 4 files"},
		},
		{
			name:        "xor archive in parallel",
			key:         testutil.TestKey,
			jobs:        4,
			wantFiles:   []string{"properties/resources.xml", "images/ball.png", "readme.txt"},
			wantContain: []string{"Extracted 4 files"},
		},
		{
			name:        "only filter",
			only:        []string{"images/*", "*.txt"},
			wantFiles:   []string{"images/ball.png", "readme.txt"},
			wantMissing: []string{"properties/resources.xml"},
			wantContain: []string{"Extracted 2 files"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			extractJobs = tt.jobs
			extractOnly = tt.only

			pakPath := testutil.WritePak(t, testutil.SampleFiles(), testutil.Options{Key: tt.key})
			outDir := filepath.Join(t.TempDir(), "new", "out")

			output, err := captureOutput(t, func() error {
				return runExtract([]string{pakPath, outDir})
			})
			if err != nil {
				t.Fatalf("runExtract() error = %v\nOutput: %s", err, output)
			}
			for _, f := range tt.wantFiles {
				if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(f))); err != nil {
					t.Errorf("expected %s: %v", f, err)
				}
			}
			for _, f := range tt.wantMissing {
				if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(f))); err == nil {
					t.Errorf("did not expect %s", f)
				}
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestExtractCommandErrors(t *testing.T) {
	dir := t.TempDir()
	pakPath := testutil.WritePak(t, testutil.SampleFiles(), testutil.Options{})
	notPak := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notPak, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	fileOut := filepath.Join(dir, "occupied")
	if err := os.WriteFile(fileOut, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		args  []string
		names string
		only  []string
	}{
		{name: "missing input", args: []string{filepath.Join(dir, "missing.pak"), t.TempDir()}},
		{name: "input is a directory", args: []string{dir, t.TempDir()}},
		{name: "output is a file", args: []string{pakPath, fileOut}},
		{name: "not a pak", args: []string{notPak, t.TempDir()}},
		{name: "bad encoding flag", args: []string{pakPath, t.TempDir()}, names: "ebcdic"},
		{name: "bad glob", args: []string{pakPath, t.TempDir()}, only: []string{"["}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			if tt.names != "" {
				extractNames = tt.names
			}
			extractOnly = tt.only
			output, err := captureOutput(t, func() error { return runExtract(tt.args) })
			if err == nil {
				t.Fatalf("expected error\nOutput: %s", output)
			}
		})
	}
}

func TestExtractCommandKeepGoing(t *testing.T) {
	resetFlags()
	extractKeepGoing = true

	files := []testutil.File{
		{Name: "../escape.txt", Data: []byte("x")},
		{Name: "good.txt", Data: []byte("ok")},
	}
	pakPath := testutil.WritePak(t, files, testutil.Options{})
	outDir := t.TempDir()

	_, err := captureOutput(t, func() error { return runExtract([]string{pakPath, outDir}) })
	if err == nil {
		t.Fatalf("expected unsafe path error")
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "good.txt")); statErr != nil {
		t.Fatalf("good.txt should be extracted with --keep-going: %v", statErr)
	}
}
