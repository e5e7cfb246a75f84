package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pakkit/pkg/pak"
	"github.com/joshuapare/pakkit/pkg/types"
)

var (
	extractJobs      int
	extractKeepGoing bool
	extractSync      bool
	extractOnly      []string
	extractNames     string
)

func init() {
	cmd := newExtractCmd()
	cmd.Flags().IntVarP(&extractJobs, "jobs", "j", 1, "Number of files written concurrently")
	cmd.Flags().BoolVar(&extractKeepGoing, "keep-going", false, "Continue after a file fails and report all failures")
	cmd.Flags().BoolVar(&extractSync, "sync", false, "Flush each file to disk before renaming it into place")
	cmd.Flags().StringSliceVar(&extractOnly, "only", nil, "Extract only names matching this glob (repeatable)")
	cmd.Flags().StringVar(&extractNames, "names", "utf8", "Record name encoding: utf8 or windows-1252")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <pak> <outdir>",
		Short: "Extract every file of an archive into a directory",
		Long: `The extract command parses a Pak archive and writes each file below the
output directory, recreating subdirectories and modification times. Existing
files are replaced. The output directory is created if it does not exist.

Example:
  pakctl extract main.pak out/
  pakctl extract main.pak out/ --jobs 8 --keep-going
  pakctl extract main.pak out/ --only 'images/*' --only '*.xml'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	pakPath, outDir := args[0], args[1]
	if err := checkInputs(pakPath, outDir); err != nil {
		return err
	}

	enc, err := parseNameEncoding(extractNames)
	if err != nil {
		return err
	}
	for _, pattern := range extractOnly {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid --only pattern %q: %w", pattern, err)
		}
	}

	printVerbose("Loading file: %s\n", pakPath)
	a, err := pak.Open(pakPath, &pak.OpenOptions{Names: enc})
	if err != nil {
		return fmt.Errorf("pak error: %w", err)
	}

	opts := &pak.ExtractOptions{
		Jobs:            extractJobs,
		ContinueOnError: extractKeepGoing,
		Sync:            extractSync,
		Filter:          onlyFilter(extractOnly),
	}
	if verbose && !quiet {
		opts.OnProgress = func(done, total int) {
			printVerbose("  %d/%d\n", done, total)
		}
	}

	if err := pak.ExtractAll(a, outDir, opts); err != nil {
		return err
	}
	printInfo("Extracted %d files to %s\n", countSelected(a, opts.Filter), outDir)
	return nil
}

// checkInputs requires a readable regular file and a directory to write into.
func checkInputs(pakPath, outDir string) error {
	info, err := os.Stat(pakPath)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input %s is not a regular file", pakPath)
	}

	info, err = os.Stat(outDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("output: %w", err)
	case !info.IsDir():
		return fmt.Errorf("output %s is not a directory", outDir)
	}
	return nil
}

func parseNameEncoding(s string) (types.NameEncoding, error) {
	switch strings.ToLower(s) {
	case "", "utf8", "utf-8":
		return types.NameUTF8, nil
	case "windows-1252", "cp1252", "ansi":
		return types.NameWindows1252, nil
	default:
		return 0, fmt.Errorf("unknown name encoding %q (want utf8 or windows-1252)", s)
	}
}

// onlyFilter matches globs against names with '/' separators.
func onlyFilter(patterns []string) func(types.Record) bool {
	if len(patterns) == 0 {
		return nil
	}
	return func(r types.Record) bool {
		name := strings.ReplaceAll(r.Name, `\`, "/")
		for _, p := range patterns {
			if ok, _ := path.Match(p, name); ok {
				return true
			}
		}
		return false
	}
}

func countSelected(a *pak.Archive, filter func(types.Record) bool) int {
	if filter == nil {
		return a.Len()
	}
	n := 0
	for i, count := 0, a.Len(); i < count; i++ {
		if filter(a.Record(i)) {
			n++
		}
	}
	return n
}
