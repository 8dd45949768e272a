package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lox/oracle/poker"
	"github.com/samber/lo"
)

// EvalCmd ranks hands given on the command line.
type EvalCmd struct {
	Board string   `short:"b" help:"Five board cards; each argument is then a pair of hole cards"`
	Cards []string `arg:"" name:"cards" help:"Hands to rank, e.g. AsKsQsJsTs or 'Ah Kh Qh Jh Th 2c 3d'"`
}

type evalRow struct {
	label string
	rank  poker.HandRank
}

func (cmd EvalCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	if err := poker.Init(); err != nil {
		return err
	}

	var rows []evalRow
	if cmd.Board == "" {
		rows, err = evalHands(cmd.Cards)
	} else {
		rows, err = evalShowdown(cmd.Board, cmd.Cards)
	}
	if err != nil {
		return err
	}
	logger.Debug("Evaluated hands", "count", len(rows))

	best := lo.MinBy(rows, func(a, b evalRow) bool { return a.rank < b.rank }).rank
	showdown := cmd.Board != "" && len(rows) > 1

	t := newTable("Hand", "Rank", "Category", "")
	for _, r := range rows {
		mark := ""
		if showdown && r.rank == best {
			mark = winStyle.Render("winner")
		}
		t.Row(handStyle.Render(r.label), strconv.Itoa(int(r.rank)), categoryStyle.Render(r.rank.String()), mark)
	}
	if cmd.Board != "" {
		fmt.Fprintln(g.stdout(), headerStyle.Render("Board: "+cmd.Board))
	}
	fmt.Fprintln(g.stdout(), t.Render())
	return nil
}

func evalHands(args []string) ([]evalRow, error) {
	rows := make([]evalRow, 0, len(args))
	for i, arg := range args {
		h, err := poker.ParseHand(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		rows = append(rows, evalRow{label: h.String(), rank: poker.Evaluate(h)})
	}
	return rows, nil
}

func evalShowdown(boardArg string, args []string) ([]evalRow, error) {
	boardCards, err := poker.ParseCards(boardArg)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(boardCards) != 5 {
		return nil, fmt.Errorf("board: %w: got %d cards, want 5", poker.ErrHandSize, len(boardCards))
	}
	board := [5]poker.Card(boardCards)

	seen := poker.NewCardSet(boardCards...)
	if seen.Count() != 5 {
		return nil, fmt.Errorf("board: %w", poker.ErrDuplicateCard)
	}

	rows := make([]evalRow, 0, len(args))
	for i, arg := range args {
		cards, err := poker.ParseCards(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return nil, fmt.Errorf("hand %d: %w: got %d hole cards, want 2", i+1, poker.ErrHandSize, len(cards))
		}
		for _, c := range cards {
			if seen.Has(c) {
				return nil, fmt.Errorf("hand %d: %w: %s", i+1, poker.ErrDuplicateCard, c)
			}
			seen.Add(c)
		}
		rows = append(rows, evalRow{
			label: cards[0].String() + cards[1].String(),
			rank:  poker.DefaultTables().EvaluateBoard(board, [2]poker.Card(cards)),
		})
	}
	if len(rows) == 0 {
		return nil, errors.New("no hands given")
	}
	return rows, nil
}
