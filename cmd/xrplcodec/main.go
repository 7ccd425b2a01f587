// Command xrplcodec translates XRP Ledger transactions and ledger objects
// between JSON and rippled's canonical binary wire format.
package main

import "github.com/ripplequill/xrplcodec/internal/cli"

func main() {
	cli.Execute()
}
