package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	binarycodec "github.com/ripplequill/xrplcodec/internal/codec/binary-codec"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex-or-file]",
	Short: "Decode a canonical binary hex blob into JSON",
	Long: `Decode reads a hex-encoded transaction blob, either given directly as an
argument, read from a file, or from stdin when no argument is given, and
prints its JSON representation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blobHex, err := readHexInput(args)
		if err != nil {
			return err
		}

		tx, err := binarycodec.Decode(blobHex)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		logVerbose("decoded %d bytes into %d fields", len(blobHex)/2, len(tx))

		out, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

// readHexInput reads the hex blob from the file named by the argument when
// that file exists, takes the argument itself as the hex blob otherwise, and
// reads stdin when no argument is given.
func readHexInput(args []string) (string, error) {
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return strings.TrimSpace(args[0]), nil
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
