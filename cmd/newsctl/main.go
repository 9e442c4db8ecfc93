package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/bilgisen/newsapi/internal/client"
	"github.com/bilgisen/newsapi/internal/logger"
	"github.com/bilgisen/newsapi/internal/models"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	addr    string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	defaultAddr := os.Getenv("NEWSAPI_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:8080"
	}

	root := &cobra.Command{
		Use:           "newsctl",
		Short:         "Command-line client for the news API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logger.InfoLevel
			if opts.verbose {
				level = logger.DebugLevel
			}
			return logger.Init(logger.Config{Level: level, Output: "stderr", Pretty: true})
		},
	}

	root.PersistentFlags().StringVar(&opts.addr, "addr", defaultAddr, "API base URL (env NEWSAPI_ADDR)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newListCmd(opts), newAddCmd(opts))

	return root
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List news items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Get().Debug().Str("addr", opts.addr).Msg("Listing news")

			items, err := client.New(opts.addr, opts.timeout).ListNews(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), client.FilterByTitle(items, title))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "only show items whose title contains this text (case-insensitive)")

	return cmd
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var item models.NewsItem

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a news item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Get().Debug().Str("addr", opts.addr).Str("title", item.Title).Msg("Adding news")

			stored, err := client.New(opts.addr, opts.timeout).AddNews(cmd.Context(), item)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), stored)
		},
	}

	cmd.Flags().StringVar(&item.Title, "title", "", "news title")
	cmd.Flags().StringVar(&item.URL, "url", "", "news URL")
	cmd.Flags().StringVar(&item.Summary, "summary", "", "news summary")
	for _, name := range []string{"title", "url", "summary"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
