package main

import (
	"fmt"
	"strconv"

	"mopoly/internal/board"
	"mopoly/internal/game"
	"mopoly/internal/results"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	neutral = color.New(color.FgHiWhite)

	tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
)

func printInfo(msg string) {
	neutral.Println(msg)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func renderResult(res game.Result) {
	t := newTable("PLAYER", "BALANCE", "ROLLS", "PROPERTIES", "BUILDINGS", "ALIVE")
	for _, st := range res.Standings {
		t.Row(
			strconv.Itoa(st.PlayerID),
			strconv.Itoa(st.Balance),
			strconv.Itoa(st.Rolls),
			strconv.Itoa(st.Properties),
			strconv.Itoa(st.Buildings),
			strconv.FormatBool(st.Alive),
		)
	}
	fmt.Println(t.Render())
	if res.Winner >= 0 {
		success.Printf("Winner: player %d after %d turns\n", res.Winner, res.Turns)
	} else {
		warn.Printf("No winner after %d turns (turn cap reached)\n", res.Turns)
	}
}

func renderSummary(wins map[int]int, games, players int) {
	accent.Println("Batch summary")
	t := newTable("PLAYER", "WINS")
	for id := 0; id < players; id++ {
		t.Row(strconv.Itoa(id), strconv.Itoa(wins[id]))
	}
	if draws := wins[-1]; draws > 0 {
		t.Row("draw", strconv.Itoa(draws))
	}
	fmt.Println(t.Render())
	neutral.Printf("%d games simulated\n", games)
}

func renderBoard(b *board.Board) {
	t := newTable("IDX", "NAME", "CATEGORY", "GROUP", "PRICE", "HOUSE")
	for _, sp := range b.Spaces() {
		price, house := "", ""
		if sp.Price > 0 {
			price = strconv.Itoa(sp.Price)
		}
		if sp.HousePrice > 0 {
			house = strconv.Itoa(sp.HousePrice)
		}
		t.Row(strconv.Itoa(sp.Index), sp.Name, string(sp.Category), sp.Group, price, house)
	}
	fmt.Println(t.Render())
}

func renderRuns(runs []results.Run) {
	if len(runs) == 0 {
		printInfo("No stored runs.")
		return
	}
	t := newTable("RUN", "SEED", "PLAYERS", "BALANCE", "GAMES", "CREATED")
	for _, r := range runs {
		t.Row(
			r.ID,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Players),
			strconv.Itoa(r.StartingBalance),
			strconv.Itoa(r.Games),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	fmt.Println(t.Render())
}

func renderStoredRun(run results.Run, games []results.GameRecord) {
	accent.Printf("Run %s: seed %d, %d players, balance %d\n", run.ID, run.Seed, run.Players, run.StartingBalance)
	for _, g := range games {
		neutral.Printf("Game %d: winner %d after %d turns\n", g.GameNo, g.Winner, g.Turns)
		t := newTable("PLAYER", "BALANCE", "ROLLS", "PROPERTIES", "BUILDINGS", "ALIVE")
		for _, st := range g.Standings {
			t.Row(
				strconv.Itoa(st.PlayerID),
				strconv.Itoa(st.Balance),
				strconv.Itoa(st.Rolls),
				strconv.Itoa(st.Properties),
				strconv.Itoa(st.Buildings),
				strconv.FormatBool(st.Alive),
			)
		}
		fmt.Println(t.Render())
	}
}
