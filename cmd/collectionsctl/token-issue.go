package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/collectionshq/collections-in-go/pkg/authz"
	"github.com/collectionshq/collections-in-go/pkg/config"
	"github.com/collectionshq/collections-in-go/pkg/token"
)

// tokenIssueCmd represents the token issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue <subject>",
	Short: "Issue a bearer token for a principal",
	Long: `Issue a bearer token for a principal.

The token is signed with the key in COLLECTIONS_TOKEN_KEY and printed to
stdout. Bindings are given as resourceId:permission pairs.

Example:
  collectionsctl token issue alice --role editor
  collectionsctl token issue bob --binding 123e4567:limitedView --binding 123e4567:createCollection`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := issueToken(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().StringP("role", "r", "viewer", "Principal role (viewer, editor, admin)")
	tokenIssueCmd.Flags().StringArrayP("binding", "b", nil, "Access binding as resourceId:permission (repeatable)")
	tokenIssueCmd.Flags().Int("ttl", 0, "Token lifetime in seconds (default: configured token_ttl)")
}

func issueToken(cmd *cobra.Command, subject string) error {
	keyB64, ok := os.LookupEnv("COLLECTIONS_TOKEN_KEY")
	if !ok {
		return fmt.Errorf("COLLECTIONS_TOKEN_KEY environment variable is required")
	}
	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return fmt.Errorf("bad COLLECTIONS_TOKEN_KEY: %w", err)
	}

	roleName, _ := cmd.Flags().GetString("role")
	role, err := authz.RoleString(roleName)
	if err != nil {
		return fmt.Errorf("invalid role %q (expected one of: %s)", roleName, strings.Join(authz.RoleStrings(), ", "))
	}

	bindingFlags, _ := cmd.Flags().GetStringArray("binding")
	bindings, err := parseBindings(bindingFlags)
	if err != nil {
		return err
	}

	ttl := config.Get().BearerTokenTTL()
	if ttlSeconds, _ := cmd.Flags().GetInt("ttl"); ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	signer := token.NewSigner(key, ttl)
	signed, err := signer.Issue(subject, role, bindings)
	if err != nil {
		return err
	}

	fmt.Println(signed)
	return nil
}

func parseBindings(flags []string) ([]authz.AccessBinding, error) {
	var bindings []authz.AccessBinding
	for _, flag := range flags {
		resourceID, permissionName, found := strings.Cut(flag, ":")
		if !found || resourceID == "" {
			return nil, fmt.Errorf("invalid binding %q (expected resourceId:permission)", flag)
		}

		permission, err := authz.PermissionString(permissionName)
		if err != nil {
			return nil, fmt.Errorf("invalid permission %q (expected one of: %s)", permissionName, strings.Join(authz.PermissionStrings(), ", "))
		}

		bindings = append(bindings, authz.AccessBinding{ResourceID: resourceID, Permission: permission})
	}
	return bindings, nil
}
