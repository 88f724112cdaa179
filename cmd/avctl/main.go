// avctl — command line interface for the Alpha Vantage client.
//
// Main CLI entrypoint using the cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/alphavantage/internal/config"
	"github.com/seenimoa/alphavantage/internal/logger"
	"github.com/seenimoa/alphavantage/pkg/alphavantage"
	"github.com/seenimoa/alphavantage/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, populated before any subcommand runs.
var (
	cfg *config.Config
	log *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "avctl",
	Short: "avctl — Alpha Vantage financial data from the command line",
	Long: `avctl queries the Alpha Vantage API: equity time series, company
fundamentals, earnings, news sentiment, market movers, forex, and crypto.
Results are printed as JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		log = logger.New("avctl", cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(incomeCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(cashflowCmd)
	rootCmd.AddCommand(fundamentalsCmd)
	rootCmd.AddCommand(earningsCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(moversCmd)
}

// newClient builds the API client from the loaded config.
func newClient() (*alphavantage.Client, error) {
	return alphavantage.New(
		alphavantage.WithAPIKey(cfg.API.Key),
		alphavantage.WithBaseURL(cfg.API.BaseURL),
		alphavantage.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.API.TimeoutSec) * time.Second}),
		alphavantage.WithLogger(log),
	)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("avctl %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Keys Command ---

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show API key status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(config.CheckAPIKeys(cfg))
	},
}

// --- Fundamental Data Commands ---

var overviewCmd = &cobra.Command{
	Use:   "overview [symbol]",
	Short: "Company overview, ratios, and key metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		overview, err := client.CompanyOverview(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(overview)
	},
}

var incomeCmd = &cobra.Command{
	Use:   "income [symbol]",
	Short: "Annual and quarterly income statements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		statement, err := client.IncomeStatement(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(statement)
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [symbol]",
	Short: "Annual and quarterly balance sheets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		sheet, err := client.BalanceSheet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(sheet)
	},
}

var cashflowCmd = &cobra.Command{
	Use:   "cashflow [symbol]",
	Short: "Annual and quarterly cash flow statements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		flow, err := client.CashFlow(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(flow)
	},
}

// fundamentalsCmd fetches all three statements concurrently. The client
// itself is synchronous; parallelism is layered here by the caller.
var fundamentalsCmd = &cobra.Command{
	Use:   "fundamentals [symbol]",
	Short: "Income statement, balance sheet, and cash flow in one shot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		symbol := args[0]

		var (
			income *models.IncomeStatement
			sheet  *models.BalanceSheet
			flow   *models.CashFlow
		)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			income, err = client.IncomeStatement(ctx, symbol)
			return err
		})
		g.Go(func() error {
			var err error
			sheet, err = client.BalanceSheet(ctx, symbol)
			return err
		})
		g.Go(func() error {
			var err error
			flow, err = client.CashFlow(ctx, symbol)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		return printJSON(map[string]any{
			"symbol":           symbol,
			"income_statement": income,
			"balance_sheet":    sheet,
			"cash_flow":        flow,
		})
	},
}

var earningsCmd = &cobra.Command{
	Use:   "earnings [symbol]",
	Short: "Annual and quarterly earnings history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		earnings, err := client.Earnings(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(earnings)
	},
}

// --- Market Commands ---

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Market news with sentiment scoring",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		opts := &alphavantage.NewsSentimentOptions{}
		opts.Tickers, _ = cmd.Flags().GetString("tickers")
		opts.Topics, _ = cmd.Flags().GetString("topics")
		opts.TimeFrom, _ = cmd.Flags().GetString("from")
		opts.TimeTo, _ = cmd.Flags().GetString("to")
		sort, _ := cmd.Flags().GetString("sort")
		opts.Sort = alphavantage.SortOrder(sort)
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		news, err := client.NewsSentiment(cmd.Context(), opts)
		if err != nil {
			return err
		}
		return printJSON(news)
	},
}

func init() {
	newsCmd.Flags().String("tickers", "", "comma-separated tickers, e.g. AAPL,MSFT")
	newsCmd.Flags().String("topics", "", "comma-separated topics, e.g. technology,ipo")
	newsCmd.Flags().String("from", "", "start time (YYYYMMDDTHHMM)")
	newsCmd.Flags().String("to", "", "end time (YYYYMMDDTHHMM)")
	newsCmd.Flags().String("sort", "", "sort order (LATEST, EARLIEST, RELEVANCE)")
	newsCmd.Flags().Int("limit", 0, "number of results (1-1000)")
}

var moversCmd = &cobra.Command{
	Use:   "movers",
	Short: "Top gainers, losers, and most actively traded tickers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		movers, err := client.TopGainersLosers(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(movers)
	},
}
