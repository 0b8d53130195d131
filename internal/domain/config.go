package domain

// ScoreConfig defines how ratings evolve. Changing it invalidates every
// derived stat, so the tournament replays the whole log after a swap.
type ScoreConfig struct {
	StartingElo float64 `json:"starting_elo"`
	GamePoints  float64 `json:"game_points"`
	EloPow      float64 `json:"elo_pow"`
	WrPow       float64 `json:"wr_pow"`
	EloWeight   float64 `json:"elo_weight"`
	WrWeight    float64 `json:"wr_weight"`
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		StartingElo: 1500,
		GamePoints:  25,
		EloPow:      6,
		WrPow:       1,
		EloWeight:   65,
		WrWeight:    100,
	}
}

func (c ScoreConfig) NewPlayerStats() PlayerStats {
	return PlayerStats{Elo: c.StartingElo}
}

// MatchmakerConfig weighs the five ranking strategies inside the
// combined ranking. It does not affect committed ratings.
type MatchmakerConfig struct {
	WeightLeastPlayed float64 `json:"least_played"`
	WeightNemesis     float64 `json:"nemesis"`
	WeightNeighbor    float64 `json:"neighbor"`
	WeightWrNeighbor  float64 `json:"wr_neighbor"`
	WeightLostWith    float64 `json:"lost_with"`
}

func DefaultMatchmakerConfig() MatchmakerConfig {
	return MatchmakerConfig{
		WeightLeastPlayed: 6,
		WeightNemesis:     4,
		WeightNeighbor:    5,
		WeightWrNeighbor:  3,
		WeightLostWith:    3,
	}
}
