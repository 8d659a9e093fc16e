package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/somecookie/SecretStroll/abc"
)

var (
	locServer string
	locPub    string
	locCred   string
	locReveal string
	locOut    string
)

var locCmd = &cobra.Command{
	Use:   "loc LAT LON",
	Short: "Sign a location query with the credential",
	Long: `Authenticate a location query, revealing only the chosen attributes.
The showing is submitted to the issuer server for verification; pass -o to
also keep the signature on disk.

Examples:
  secretstroll loc 46.52345 6.57890 -p key.pub -c anon.cred -r gym`,
	Args: cobra.ExactArgs(2),
	RunE: runLoc,
}

func init() {
	locCmd.Flags().StringVar(&locServer, "server", "http://localhost:8000", "Issuer server URL")
	locCmd.Flags().StringVarP(&locPub, "pub", "p", "key.pub", "Issuer public key file")
	locCmd.Flags().StringVarP(&locCred, "cred", "c", "anon.cred", "Credential file")
	locCmd.Flags().StringVarP(&locReveal, "reveal", "r", "", "Comma-separated attributes to reveal")
	locCmd.Flags().StringVarP(&locOut, "out", "o", "", "Optional output file for the showing")
}

func runLoc(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", args[1])
	}

	pk, err := os.ReadFile(locPub)
	if err != nil {
		return err
	}
	credential, err := os.ReadFile(locCred)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%v,%v", lat, lon)
	showing, err := abc.SignRequest(pk, credential, []byte(message), locReveal)
	if err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	if locOut != "" {
		if err := os.WriteFile(locOut, showing, 0o644); err != nil {
			return err
		}
	}

	client := newIssuerClient(locServer)
	valid, err := client.Verify(message, locReveal, showing)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("server rejected the request signature")
	}

	fmt.Printf("Location query %s accepted (revealed: %q)\n", message, locReveal)
	return nil
}
