package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	binarycodec "github.com/ripplequill/xrplcodec/internal/codec/binary-codec"
)

var (
	batchDecode     bool
	batchConcurrent int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Encode or decode many newline-delimited inputs concurrently",
	Long: `Batch reads newline-delimited JSON transactions (default) or, with
--decode, newline-delimited hex blobs, from stdin, and writes one encoded
or decoded result per line to stdout in input order. Lines are processed
concurrently up to --concurrency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(os.Stdin)
		if err != nil {
			return err
		}

		logVerbose("processing %d lines at concurrency %d", len(lines), batchConcurrent)
		results := make([]string, len(lines))
		group := new(errgroup.Group)
		group.SetLimit(batchConcurrent)

		for i, line := range lines {
			i, line := i, line
			group.Go(func() error {
				result, err := processBatchLine(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				results[i] = result
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, result := range results {
			fmt.Fprintln(out, result)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchDecode, "decode", false, "treat each input line as hex to decode, instead of JSON to encode")
	batchCmd.Flags().IntVar(&batchConcurrent, "concurrency", 8, "maximum number of lines processed at once")
	rootCmd.AddCommand(batchCmd)
}

func processBatchLine(line string) (string, error) {
	if batchDecode {
		tx, err := binarycodec.Decode(line)
		if err != nil {
			return "", err
		}
		out, err := json.Marshal(tx)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	var tx map[string]any
	if err := json.Unmarshal([]byte(line), &tx); err != nil {
		return "", fmt.Errorf("parse JSON: %w", err)
	}
	return binarycodec.Encode(tx)
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
