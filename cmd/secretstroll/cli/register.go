package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/somecookie/SecretStroll/abc"
)

var (
	registerServer     string
	registerPub        string
	registerUser       string
	registerAttributes string
	registerOut        string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register with the issuer and obtain a credential",
	Long: `Run the issuance protocol against the issuer server: prepare a blinded
request for the given attributes, submit it, and finalize the issuer's
response into a credential file.

Examples:
  secretstroll register -p key.pub -u bob -a gym,bars -o anon.cred`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerServer, "server", "http://localhost:8000", "Issuer server URL")
	registerCmd.Flags().StringVarP(&registerPub, "pub", "p", "key.pub", "Issuer public key file")
	registerCmd.Flags().StringVarP(&registerUser, "user", "u", "", "User name")
	registerCmd.Flags().StringVarP(&registerAttributes, "attributes", "a", "", "Comma-separated attributes to bind")
	registerCmd.Flags().StringVarP(&registerOut, "out", "o", "anon.cred", "Output file for the credential")
	registerCmd.MarkFlagRequired("user")
}

func runRegister(cmd *cobra.Command, args []string) error {
	pk, err := os.ReadFile(registerPub)
	if err != nil {
		return err
	}

	request, state, err := abc.PrepareRegistration(pk, registerUser, registerAttributes)
	if err != nil {
		return fmt.Errorf("failed to prepare registration: %w", err)
	}

	client := newIssuerClient(registerServer)
	response, err := client.Register(registerUser, registerAttributes, request)
	if err != nil {
		return err
	}

	credential, err := abc.ProceedRegistrationResponse(pk, response, state)
	if err != nil {
		return fmt.Errorf("failed to finalize registration: %w", err)
	}
	if err := os.WriteFile(registerOut, credential, 0o600); err != nil {
		return err
	}

	fmt.Printf("Registered %s, credential written to %s\n", registerUser, registerOut)
	return nil
}
