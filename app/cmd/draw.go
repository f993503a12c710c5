package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"luvo/app/models/card"
	"luvo/app/models/spread"
	"luvo/bootstrap"
	"luvo/pkg/console"
	"luvo/pkg/deck"
)

var (
	drawQuestion  string
	drawInterpret bool
)

// CmdDraw 在终端里抽一次牌
var CmdDraw = &cobra.Command{
	Use:       "draw [spread]",
	Short:     "Draw cards for a spread (single, three, celtic, relationship, horseshoe)",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: spread.IDs(),
	RunE:      runDraw,
}

func init() {
	CmdDraw.Flags().StringVarP(&drawQuestion, "question", "q", "", "question to ask")
	CmdDraw.Flags().BoolVarP(&drawInterpret, "interpret", "i", false, "ask the AI provider for an interpretation")
}

func runDraw(cmd *cobra.Command, args []string) error {
	spreadType := spread.Single
	if len(args) > 0 {
		spreadType = args[0]
	}

	cards, err := deck.NewDrawer(nil).Draw(spreadType)
	if err != nil {
		return fmt.Errorf("%w: %s", err, spreadType)
	}

	out := cmd.OutOrStdout()
	console.Label(out, "Spread: ", "%s", spreadType)
	if drawQuestion != "" {
		console.Label(out, "Question: ", "%s", drawQuestion)
	}
	fmt.Fprintln(out)
	printCards(out, cards)

	if drawInterpret {
		interpreter, _ := bootstrap.SetupInterpreter(nil)
		fmt.Fprintln(out)
		fmt.Fprintln(out, interpreter.Interpret(context.Background(), drawQuestion, cards, spreadType))
	}
	return nil
}

func printCards(w io.Writer, cards []card.DrawnCard) {
	for i, c := range cards {
		name := c.NameRu
		if c.Reversed {
			name += " (перевернутая)"
		}
		label := c.PositionLabel()
		if label == "" {
			label = fmt.Sprintf("%d", i+1)
		}
		console.Label(w, fmt.Sprintf("%2d. %s: ", i+1, label), "%s", name)
		fmt.Fprintf(w, "    %s\n", c.Meaning)
	}
}
