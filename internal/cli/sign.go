package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	binarycodec "github.com/ripplequill/xrplcodec/internal/codec/binary-codec"
)

var (
	signMultisignAccount string
	signClaim            bool
	signBatch            bool
)

var signCmd = &cobra.Command{
	Use:   "sign [file]",
	Short: "Produce the hash-prefixed bytes a signer actually signs",
	Long: `Sign reads a JSON transaction (or, with --claim, a {"Channel","Amount"}
object, or with --batch, a {"flags","txIDs"} object) and prints the
hash-prefixed, to-be-signed hex: the bytes that get SHA-512Half'd and
passed to a signing key. It never touches private key material.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := readJSONObject(args)
		if err != nil {
			return err
		}

		var blob string
		switch {
		case signClaim:
			blob, err = binarycodec.EncodeForSigningClaim(tx)
		case signBatch:
			blob, err = encodeForSigningBatchFromJSON(tx)
		case signMultisignAccount != "":
			blob, err = binarycodec.EncodeForMultisigning(tx, signMultisignAccount)
		default:
			blob, err = binarycodec.EncodeForSigning(tx)
		}
		if err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		logVerbose("produced %d hex chars of signing bytes", len(blob))

		fmt.Fprintln(cmd.OutOrStdout(), blob)
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signMultisignAccount, "multisign", "", "classic address of the signer contributing this signature")
	signCmd.Flags().BoolVar(&signClaim, "claim", false, "input is a payment channel claim ({\"Channel\",\"Amount\"})")
	signCmd.Flags().BoolVar(&signBatch, "batch", false, "input is a Batch transaction's inner-transaction set ({\"flags\",\"txIDs\"})")
	rootCmd.AddCommand(signCmd)
}

// encodeForSigningBatchFromJSON adapts the JSON-decoded txIDs (a []any of
// strings) to the []string EncodeForSigningBatch expects.
func encodeForSigningBatchFromJSON(obj map[string]any) (string, error) {
	rawIDs, _ := obj["txIDs"].([]any)
	ids := make([]string, 0, len(rawIDs))
	for _, v := range rawIDs {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("sign --batch: txIDs must be strings")
		}
		ids = append(ids, s)
	}

	normalized := map[string]any{
		"flags": obj["flags"],
		"txIDs": ids,
	}
	return binarycodec.EncodeForSigningBatch(normalized)
}
