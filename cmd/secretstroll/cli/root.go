package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "secretstroll",
	Short: "SecretStroll — privacy-preserving attribute-based credentials",
	Long: `SecretStroll issues and shows anonymous attribute-based credentials.
Register once with an issuer, then authenticate location queries while
revealing only the attributes you choose.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(genCACmd)
	rootCmd.AddCommand(getPKCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(locCmd)
	rootCmd.AddCommand(verifyCmd)
}
