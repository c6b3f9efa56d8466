// Package render prints an analysis report to the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaliph/chatlens/models"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	styleWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

const barWidth = 30

// Report writes a styled terminal summary of one analysis.
func Report(w io.Writer, rep models.Report) {
	fmt.Fprintln(w, styleTitle.Render("chatlens · "+rep.User))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s  messages %d   words %d   media %d   links %d\n",
		styleHeader.Render("Volume"),
		rep.Volume.TotalMessages, rep.Volume.TotalWords,
		rep.Volume.MediaCount, rep.Volume.LinkCount)
	if rep.FirstMessageAt != nil && rep.LastMessageAt != nil {
		fmt.Fprintf(w, "%s  %s to %s\n",
			styleHeader.Render("Range "),
			rep.FirstMessageAt.Format("2 Jan 2006 15:04"),
			rep.LastMessageAt.Format("2 Jan 2006 15:04"))
	}
	fmt.Fprintln(w)

	if len(rep.ActiveUsers) > 0 {
		fmt.Fprintln(w, styleHeader.Render("Most active users"))
		max := rep.ActiveUsers[0].Messages
		for _, u := range rep.ActiveUsers {
			fmt.Fprintf(w, "  %-20s %6d  %5.1f%%  %s\n",
				truncate(u.User, 20), u.Messages, u.Share,
				styleBar.Render(bar(u.Messages, max)))
		}
		fmt.Fprintln(w)
	}

	printRanked(w, "Top words", rep.WordFrequency)
	printRanked(w, "Top emoji", rep.EmojiFrequency)
	printRanked(w, "Busiest days", rep.WeekdayActivity)
	printRanked(w, "Monthly timeline", rep.MonthlyTimeline)
	if len(rep.ConversationStarters) > 0 {
		printRanked(w, "Conversation starters", rep.ConversationStarters)
	}

	fmt.Fprintf(w, "%s  positive %d   neutral %d   negative %d\n",
		styleHeader.Render("Sentiment"),
		rep.Sentiment.Positive, rep.Sentiment.Neutral, rep.Sentiment.Negative)

	if n := len(rep.Offensive.Messages); n > 0 {
		fmt.Fprintf(w, "%s  %d message(s) contain flagged words\n",
			styleWarn.Render("Flagged"), n)
	} else {
		fmt.Fprintf(w, "%s  no flagged messages\n", styleHeader.Render("Flagged"))
	}
}

func printRanked(w io.Writer, title string, rows []models.LabelCount) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, styleHeader.Render(title))
	max := 0
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-20s %6d  %s\n",
			truncate(r.Label, 20), r.Count, styleBar.Render(bar(r.Count, max)))
	}
	fmt.Fprintln(w)
}

func bar(v, max int) string {
	if max <= 0 {
		return ""
	}
	n := v * barWidth / max
	if n == 0 && v > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + styleDim.Render("…")
}
