package game

// Standing is the final per-player record handed to the reporting layer.
type Standing struct {
	PlayerID   int  `json:"player_id"`
	Balance    int  `json:"balance"`
	Rolls      int  `json:"rolls"`
	Properties int  `json:"properties"`
	Buildings  int  `json:"buildings"`
	Alive      bool `json:"alive"`
}

// Result summarizes one finished match. Winner is -1 when the match hit the
// turn cap with more than one player still standing.
type Result struct {
	Winner    int        `json:"winner"`
	Turns     int        `json:"turns"`
	Standings []Standing `json:"standings"`
}

func (g *Game) result(winner int) Result {
	res := Result{Winner: winner, Turns: g.turn}
	for _, p := range g.players {
		buildings := 0
		for _, idx := range p.Owned {
			buildings += g.props[idx].Buildings
		}
		res.Standings = append(res.Standings, Standing{
			PlayerID:   p.ID,
			Balance:    p.Balance,
			Rolls:      p.Rolls,
			Properties: len(p.Owned),
			Buildings:  buildings,
			Alive:      p.Alive,
		})
	}
	return res
}
