package main

import (
	"github.com/spf13/cobra"

	"github.com/seenimoa/alphavantage/pkg/alphavantage"
)

// Schema-free endpoints: time series, forex, and crypto return the decoded
// payload as-is.

func init() {
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(fxCmd)
	rootCmd.AddCommand(cryptoCmd)

	seriesCmd.AddCommand(seriesIntradayCmd)
	seriesCmd.AddCommand(seriesDailyCmd)
	seriesCmd.AddCommand(seriesWeeklyCmd)
	seriesCmd.AddCommand(seriesMonthlyCmd)

	fxCmd.AddCommand(fxIntradayCmd)
	fxCmd.AddCommand(fxDailyCmd)
	fxCmd.AddCommand(fxWeeklyCmd)
	fxCmd.AddCommand(fxMonthlyCmd)

	cryptoCmd.AddCommand(cryptoIntradayCmd)
	cryptoCmd.AddCommand(cryptoDailyCmd)
	cryptoCmd.AddCommand(cryptoWeeklyCmd)
	cryptoCmd.AddCommand(cryptoMonthlyCmd)

	seriesIntradayCmd.Flags().String("interval", "5min", "sampling interval (1min, 5min, 15min, 30min, 60min)")
	seriesIntradayCmd.Flags().String("month", "", "month of history (YYYY-MM, premium)")
	seriesIntradayCmd.Flags().Bool("full", false, "return full-length history")
	seriesDailyCmd.Flags().Bool("adjusted", false, "split/dividend adjusted data")
	seriesDailyCmd.Flags().Bool("full", false, "return full-length history")
	seriesWeeklyCmd.Flags().Bool("adjusted", false, "split/dividend adjusted data")
	seriesMonthlyCmd.Flags().Bool("adjusted", false, "split/dividend adjusted data")

	fxIntradayCmd.Flags().String("interval", "5min", "sampling interval (1min, 5min, 15min, 30min, 60min)")
	fxIntradayCmd.Flags().Bool("full", false, "return full-length history")
	fxDailyCmd.Flags().Bool("full", false, "return full-length history")

	cryptoIntradayCmd.Flags().String("interval", "5min", "sampling interval (1min, 5min, 15min, 30min, 60min)")
	cryptoIntradayCmd.Flags().Bool("full", false, "return full-length history")
	cryptoDailyCmd.Flags().Bool("full", false, "return full-length history")
}

func outputSize(cmd *cobra.Command) alphavantage.OutputSize {
	if full, _ := cmd.Flags().GetBool("full"); full {
		return alphavantage.OutputSizeFull
	}
	return alphavantage.OutputSizeCompact
}

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Equity time series (raw payload)",
}

var seriesIntradayCmd = &cobra.Command{
	Use:   "intraday [symbol]",
	Short: "Intraday equity time series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetString("interval")
		month, _ := cmd.Flags().GetString("month")
		data, err := client.TimeSeriesIntraday(cmd.Context(), args[0],
			alphavantage.Interval(interval), &alphavantage.IntradayOptions{
				Month:      month,
				OutputSize: outputSize(cmd),
			})
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var seriesDailyCmd = &cobra.Command{
	Use:   "daily [symbol]",
	Short: "Daily equity time series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		opts := &alphavantage.SeriesOptions{OutputSize: outputSize(cmd)}
		fetch := client.TimeSeriesDaily
		if adjusted, _ := cmd.Flags().GetBool("adjusted"); adjusted {
			fetch = client.TimeSeriesDailyAdjusted
		}
		data, err := fetch(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var seriesWeeklyCmd = &cobra.Command{
	Use:   "weekly [symbol]",
	Short: "Weekly equity time series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		fetch := client.TimeSeriesWeekly
		if adjusted, _ := cmd.Flags().GetBool("adjusted"); adjusted {
			fetch = client.TimeSeriesWeeklyAdjusted
		}
		data, err := fetch(cmd.Context(), args[0], alphavantage.DataTypeJSON)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var seriesMonthlyCmd = &cobra.Command{
	Use:   "monthly [symbol]",
	Short: "Monthly equity time series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		fetch := client.TimeSeriesMonthly
		if adjusted, _ := cmd.Flags().GetBool("adjusted"); adjusted {
			fetch = client.TimeSeriesMonthlyAdjusted
		}
		data, err := fetch(cmd.Context(), args[0], alphavantage.DataTypeJSON)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var fxCmd = &cobra.Command{
	Use:   "fx",
	Short: "Foreign exchange rates (raw payload)",
}

var fxIntradayCmd = &cobra.Command{
	Use:   "intraday [from] [to]",
	Short: "Intraday exchange rates for a currency pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetString("interval")
		data, err := client.ForexIntraday(cmd.Context(), args[0], args[1],
			alphavantage.Interval(interval),
			&alphavantage.SeriesOptions{OutputSize: outputSize(cmd)})
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var fxDailyCmd = &cobra.Command{
	Use:   "daily [from] [to]",
	Short: "Daily exchange rates for a currency pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.ForexDaily(cmd.Context(), args[0], args[1],
			&alphavantage.SeriesOptions{OutputSize: outputSize(cmd)})
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var fxWeeklyCmd = &cobra.Command{
	Use:   "weekly [from] [to]",
	Short: "Weekly exchange rates for a currency pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.ForexWeekly(cmd.Context(), args[0], args[1], alphavantage.DataTypeJSON)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var fxMonthlyCmd = &cobra.Command{
	Use:   "monthly [from] [to]",
	Short: "Monthly exchange rates for a currency pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.ForexMonthly(cmd.Context(), args[0], args[1], alphavantage.DataTypeJSON)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var cryptoCmd = &cobra.Command{
	Use:   "crypto",
	Short: "Digital currency prices (raw payload)",
}

var cryptoIntradayCmd = &cobra.Command{
	Use:   "intraday [symbol] [market]",
	Short: "Intraday digital currency prices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetString("interval")
		data, err := client.CryptoIntraday(cmd.Context(), args[0], args[1],
			alphavantage.Interval(interval),
			&alphavantage.SeriesOptions{OutputSize: outputSize(cmd)})
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var cryptoDailyCmd = &cobra.Command{
	Use:   "daily [symbol] [market]",
	Short: "Daily digital currency prices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.CryptoDaily(cmd.Context(), args[0], args[1],
			&alphavantage.SeriesOptions{OutputSize: outputSize(cmd)})
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var cryptoWeeklyCmd = &cobra.Command{
	Use:   "weekly [symbol] [market]",
	Short: "Weekly digital currency prices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.CryptoWeekly(cmd.Context(), args[0], args[1], alphavantage.DataTypeJSON)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var cryptoMonthlyCmd = &cobra.Command{
	Use:   "monthly [symbol] [market]",
	Short: "Monthly digital currency prices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.CryptoMonthly(cmd.Context(), args[0], args[1], alphavantage.DataTypeJSON)
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}
