package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pakkit/pkg/pak"
)

var (
	listDigest bool
	listNames  string
)

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listDigest, "digest", false, "Show the sha256 digest of each file")
	cmd.Flags().StringVar(&listNames, "names", "utf8", "Record name encoding: utf8 or windows-1252")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <pak>",
		Short: "List the files of an archive",
		Long: `The list command prints every record of the file table in archive order
with its size, modification time and data offset.

Example:
  pakctl list main.pak
  pakctl list main.pak --digest
  pakctl list main.pak --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	enc, err := parseNameEncoding(listNames)
	if err != nil {
		return err
	}
	a, err := pak.Open(args[0], &pak.OpenOptions{Names: enc})
	if err != nil {
		return fmt.Errorf("pak error: %w", err)
	}
	entries, err := pak.List(a, &pak.ListOptions{Digest: listDigest})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(entries)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		mark := ""
		if !e.InBounds {
			mark = "  (out of bounds)"
		}
		if listDigest {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s%s\n", e.Size, e.ModTime.Format("2006-01-02 15:04:05"), e.Digest, e.Name, mark)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s%s\n", e.Size, e.ModTime.Format("2006-01-02 15:04:05"), e.Name, mark)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printVerbose("%d files\n", len(entries))
	return nil
}
