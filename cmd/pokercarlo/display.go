package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercarlo/internal/deck"
	"github.com/lox/pokercarlo/internal/montecarlo"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func displayResults(out io.Writer, hands [2]deck.Hand, board []deck.Card, result *montecarlo.Result, names [2]string) {
	if len(board) > 0 {
		fmt.Fprintf(out, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(out, "%s\n\n", formatCards(board))
	}

	p1, p2, tie := result.Percentages()
	m1, m2, mTie := result.Margins95()
	wins := [2]float64{p1, p2}
	margins := [2]float64{m1, m2}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("makes"))

	for i, hand := range hands {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(formatCards(hand.Cards())),
			winStyle.Render(fmt.Sprintf("%.1f%% ±%.1f", wins[i], margins[i])),
			tieStyle.Render(fmt.Sprintf("%.1f%% ±%.1f", tie, mTie)),
			categoryStyle.Render(names[i]))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%s\n", dimStyle.Render(fmt.Sprintf("%d trials in %v (run %s)",
		result.Trials, result.Duration.Truncate(time.Millisecond), result.RunID)))
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
