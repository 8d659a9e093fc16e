package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	getPKServer string
	getPKOut    string
)

var getPKCmd = &cobra.Command{
	Use:   "get-pk",
	Short: "Fetch the issuer public key from the server",
	Long: `Retrieve the issuer's public key over HTTP and write it to a file.

Examples:
  secretstroll get-pk --server http://localhost:8000 -o key.pub`,
	Args: cobra.NoArgs,
	RunE: runGetPK,
}

func init() {
	getPKCmd.Flags().StringVar(&getPKServer, "server", "http://localhost:8000", "Issuer server URL")
	getPKCmd.Flags().StringVarP(&getPKOut, "out", "o", "key.pub", "Output file for the public key")
}

func runGetPK(cmd *cobra.Command, args []string) error {
	client := newIssuerClient(getPKServer)
	pk, err := client.GetPublicKey()
	if err != nil {
		return err
	}
	if err := os.WriteFile(getPKOut, pk, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote public key to %s\n", getPKOut)
	return nil
}
