/*
Package pak reads PopCap Pak containers and extracts their files.

# Quick Start

Extract an archive into a directory:

	err := pak.Unpack("main.pak", "out", nil, nil)

# Features

  - Plain and XOR-obfuscated (0xF7) archives, detected from the magic
  - zstd-wrapped archives, decompressed transparently
  - Atomic file writes with original modification times
  - Optional parallel extraction and explicit error policy
  - Listing with sha256 content digests

# Basic Usage

Open once, inspect, then extract:

	a, err := pak.Open("main.pak", nil)
	if err != nil {
	    log.Fatal(err)
	}
	for _, r := range a.Records() {
	    fmt.Println(r.Name, r.Size, pak.FiletimeToTime(r.RawTime))
	}
	err = pak.ExtractAll(a, "out", &pak.ExtractOptions{Jobs: 4})

# Error Handling

Errors are *types.Error values with a stable Kind. Use errors.Is with the
sentinels or types.IsKind:

	if errors.Is(err, types.ErrUnrecognizedFormat) {
	    // not a pak file
	}

By default the first failing record stops extraction. ContinueOnError keeps
going and returns every failure joined.
*/
package pak
