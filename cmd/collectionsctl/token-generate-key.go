package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// tokenGenerateKeyCmd represents the token generate-key command
var tokenGenerateKeyCmd = &cobra.Command{
	Use:   "generate-key",
	Short: "Generate a token signing key",
	Long: `
Generate a token signing key

Use this command to generate a new Base64-encoded 256 bit HMAC key. Once generated, this key should be placed into the environment of
the collections server. It will be used to sign and verify the bearer tokens presented to the API.

Example:

$ export COLLECTIONS_TOKEN_KEY="$(collectionsctl token generate-key)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		if _, err := rand.Read(bytes); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to generate key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	tokenCmd.AddCommand(tokenGenerateKeyCmd)
}
