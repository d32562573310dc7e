package entity

// Score is the number of games a player has won.
type Score struct {
	Name string
	Wins int
}

type Scoreboard struct {
	Games  int
	Ties   int
	Scores []Score
}
