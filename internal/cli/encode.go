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

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a JSON transaction into canonical binary hex",
	Long: `Encode reads a JSON transaction or ledger object (from file, or stdin when
no file is given) and writes its canonical binary form as uppercase hex.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := readJSONObject(args)
		if err != nil {
			return err
		}

		hexBlob, err := binarycodec.Encode(tx)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if cfg != nil && !cfg.Uppercase {
			hexBlob = strings.ToLower(hexBlob)
		}
		logVerbose("encoded %d fields into %d hex chars", len(tx), len(hexBlob))
		fmt.Fprintln(cmd.OutOrStdout(), hexBlob)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

// readJSONObject reads a JSON object from args[0] if present, else stdin.
func readJSONObject(args []string) (map[string]any, error) {
	var data []byte
	var err error

	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return obj, nil
}
