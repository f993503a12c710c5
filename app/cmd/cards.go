package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"luvo/app/models/card"
	"luvo/app/models/spread"
)

// CmdCards 列出牌库和牌阵
var CmdCards = &cobra.Command{
	Use:   "cards",
	Short: "List the deck and the available spreads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range card.All() {
			arcana := c.SuitRu
			if c.IsMajor() {
				arcana = "Старший аркан"
			}
			fmt.Fprintf(out, "%2d  %-22s %-26s %s\n", c.ID, c.Name, c.NameRu, arcana)
		}
		fmt.Fprintln(out)
		for _, s := range spread.All() {
			fmt.Fprintf(out, "%-13s %2d  %s\n", s.ID, s.Cards, s.Name)
		}
	},
}
