package main

import (
	"testing"

	"github.com/joshuapare/pakkit/internal/testutil"
)

func TestInfoCommand(t *testing.T) {
	tests := []struct {
		name        string
		opts        testutil.Options
		json        bool
		wantContain []string
	}{
		{
			name:        "plain",
			wantContain: []string{"Version: 0", "Obfuscation: none", "Files: 4"},
		},
		{
			name:        "xor",
			opts:        testutil.Options{Key: testutil.TestKey, Version: 2},
			wantContain: []string{"Version: 2", "Obfuscation: XOR 0xF7", "Files: 4"},
		},
		{
			name:        "json",
			json:        true,
			wantContain: []string{`"records": 4`, `"xor_key": 0`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			pakPath := testutil.WritePak(t, testutil.SampleFiles(), tt.opts)

			output, err := captureOutput(t, func() error { return runInfo([]string{pakPath}) })
			if err != nil {
				t.Fatalf("runInfo() error = %v\nOutput: %s", err, output)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestInfoCommandNotAPak(t *testing.T) {
	resetFlags()
	pakPath := testutil.WritePak(t, nil, testutil.Options{Key: 0x11})
	if _, err := captureOutput(t, func() error { return runInfo([]string{pakPath}) }); err == nil {
		t.Fatalf("expected unrecognized format error")
	}
}

func TestInfoCommandNameEncoding(t *testing.T) {
	files := []testutil.File{{RawName: []byte{0xE9, 't', 'e', '.', 't', 'x', 't'}, Data: []byte("x")}}
	pakPath := testutil.WritePak(t, files, testutil.Options{})

	resetFlags()
	if _, err := captureOutput(t, func() error { return runInfo([]string{pakPath}) }); err == nil {
		t.Fatalf("expected invalid encoding error for utf8 names")
	}

	resetFlags()
	infoNames = "windows-1252"
	output, err := captureOutput(t, func() error { return runInfo([]string{pakPath}) })
	if err != nil {
		t.Fatalf("runInfo() error = %v\nOutput: %s", err, output)
	}
	assertContains(t, output, []string{"Files: 1"})

	resetFlags()
	infoNames = "ebcdic"
	if _, err := captureOutput(t, func() error { return runInfo([]string{pakPath}) }); err == nil {
		t.Fatalf("expected unknown encoding error")
	}
}
