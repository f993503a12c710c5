package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"luvo/pkg/app"
	"luvo/pkg/deck"
)

// CmdDaily 打印某天的每日一牌，默认今天（UTC）
var CmdDaily = &cobra.Command{
	Use:   "daily [YYYY-MM-DD]",
	Short: "Show the card of the day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := app.TodayUTC()
		if len(args) > 0 {
			if _, err := time.Parse(time.DateOnly, args[0]); err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}
			date = args[0]
		}

		daily := deck.Daily(date)
		fmt.Fprintln(cmd.OutOrStdout(), daily.Date)
		fmt.Fprintln(cmd.OutOrStdout(), daily.Message)
		return nil
	},
}
