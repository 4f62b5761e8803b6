package game

import (
	"cmp"
	"slices"
)

// Standing is one line of the leaderboard.
type Standing struct {
	Place  int
	Name   string
	Points int
}

// Leaderboard orders players by fewest points, then by name. Players on the
// same points share a place.
func (g *Game) Leaderboard() []Standing {
	return leaderboard(g.players)
}

func leaderboard(players []*Player) []Standing {
	out := make([]Standing, 0, len(players))
	for _, p := range players {
		out = append(out, Standing{Name: p.Name, Points: p.Points})
	}
	slices.SortFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(a.Points, b.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for i := range out {
		if i > 0 && out[i].Points == out[i-1].Points {
			out[i].Place = out[i-1].Place
			continue
		}
		out[i].Place = i + 1
	}
	return out
}
