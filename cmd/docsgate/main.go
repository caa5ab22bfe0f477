package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/docsgate/internal/config"
	"github.com/kailas-cloud/docsgate/internal/version"
)

var envName string

var rootCmd = &cobra.Command{
	Use:   "docsgate",
	Short: "MCP tool gateway over a Meilisearch documentation index",
	Long: `docsgate exposes a documentation search index to AI assistants as a
fixed set of MCP tools: search_docs, search_chunks, get_document, list_tags,
lookup_decision and index_stats.

Configuration is read from the environment (and a .env file):
  MEILISEARCH_URL, MEILISEARCH_API_KEY, MEILI_INDEX_NAME,
  MEILI_CHUNKS_INDEX_NAME, PORT, LOG_LEVEL, DOCSGATE_API_KEYS`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docsgate %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", config.GetEnv(),
		"environment name: local, dev, docker, prod")
	rootCmd.AddCommand(stdioCmd, httpCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
