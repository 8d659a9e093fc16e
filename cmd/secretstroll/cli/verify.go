package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/somecookie/SecretStroll/abc"
)

var (
	verifyPub     string
	verifyMessage string
	verifyReveal  string
	verifySig     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a showing offline",
	Long: `Check a request signature against the issuer public key without
contacting the server.

Examples:
  secretstroll verify -p key.pub -m "46.52345,6.57890" -r gym -s showing.sig`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyPub, "pub", "p", "key.pub", "Issuer public key file")
	verifyCmd.Flags().StringVarP(&verifyMessage, "message", "m", "", "Signed message")
	verifyCmd.Flags().StringVarP(&verifyReveal, "reveal", "r", "", "Comma-separated revealed attributes")
	verifyCmd.Flags().StringVarP(&verifySig, "sig", "s", "", "Showing file")
	verifyCmd.MarkFlagRequired("message")
	verifyCmd.MarkFlagRequired("sig")
}

func runVerify(cmd *cobra.Command, args []string) error {
	pk, err := os.ReadFile(verifyPub)
	if err != nil {
		return err
	}
	showing, err := os.ReadFile(verifySig)
	if err != nil {
		return err
	}

	if !abc.CheckRequestSignature(pk, []byte(verifyMessage), verifyReveal, showing) {
		return fmt.Errorf("signature is not valid")
	}
	fmt.Println("Signature is valid")
	return nil
}
