package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pakkit/pkg/pak"
)

var infoNames string

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoNames, "names", "utf8", "Record name encoding: utf8 or windows-1252")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <pak>",
		Short: "Validate an archive header and report basic metadata",
		Long: `The info command parses a Pak archive and displays its version,
obfuscation key, record count and data region layout.

Example:
  pakctl info main.pak
  pakctl info main.pak --json
  pakctl info legacy.pak --names windows-1252`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	pakPath := args[0]
	enc, err := parseNameEncoding(infoNames)
	if err != nil {
		return err
	}

	printVerbose("Opening archive: %s\n", pakPath)

	info, err := pak.Stats(pakPath, &pak.OpenOptions{Names: enc})
	if err != nil {
		return fmt.Errorf("failed to get archive info: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nArchive Information:\n")
	printInfo("  File: %s\n", pakPath)
	if stat, err := os.Stat(pakPath); err == nil {
		printInfo("  Size: %s\n", humanSize(stat.Size()))
	}
	printInfo("  Version: %d\n", info.Version)
	if info.XorKey != 0 {
		printInfo("  Obfuscation: XOR 0x%02X\n", info.XorKey)
	} else {
		printInfo("  Obfuscation: none\n")
	}
	printInfo("  Files: %d\n", info.Records)
	printInfo("  Data offset: 0x%X\n", info.DataOffset)
	printInfo("  Data size: %s\n", humanSize(int64(info.DataSize)))
	if end := uint64(info.DataOffset) + info.DataSize; end != uint64(info.PayloadSize) {
		printInfo("  Warning: table declares data ending at %d, archive is %d bytes\n", end, info.PayloadSize)
	}
	return nil
}

func humanSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
