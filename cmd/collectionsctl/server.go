package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/collectionshq/collections-in-go/pkg/audit"
	"github.com/collectionshq/collections-in-go/pkg/config"
	"github.com/collectionshq/collections-in-go/pkg/db"
	"github.com/collectionshq/collections-in-go/pkg/server"
	"github.com/collectionshq/collections-in-go/pkg/server/endpoints"
	storegorm "github.com/collectionshq/collections-in-go/pkg/server/store/gorm"
	"github.com/collectionshq/collections-in-go/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("COLLECTIONS_BIND_ADDRESS"); addr != "" {
		return addr
	}
	return config.Get().BindAddress
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return config.Get().Port
}

func defaultPortInt() int {
	if p, err := strconv.Atoi(defaultPort()); err == nil {
		return p
	}
	return 8080
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the collections application server",
	Long: `Run the collections application server

To run the server requires the environment variables COLLECTIONS_TOKEN_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		tokenKeyB64, ok := os.LookupEnv("COLLECTIONS_TOKEN_KEY")
		if !ok {
			fmt.Fprintln(os.Stderr, "COLLECTIONS_TOKEN_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		tokenKey, err := base64.StdEncoding.DecodeString(tokenKeyB64)
		if err != nil {
			fmt.Println("Bad COLLECTIONS_TOKEN_KEY:", err)
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}
		audit.SetEnabled(cfg.AuditEnabled)

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		collectionsStore := storegorm.NewCollectionsStore(database)
		healthStore := storegorm.NewHealthStore(database)
		verifier := token.NewVerifier(tokenKey)

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(collectionsStore, healthStore, verifier, database, host, port)

		endpoints.RegisterAll(s)

		// Pick up config file edits without a restart.
		stopWatch, err := config.Watch(func(c *config.CollectionsConfig) {
			audit.SetEnabled(c.AuditEnabled)
			log.Println("Configuration reloaded")
		})
		if err == nil {
			defer func() { _ = stopWatch() }()
		}

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
