package domain

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type PlayerID uint32

type Color string

const (
	White     Color = "white"
	Blue      Color = "blue"
	Black     Color = "black"
	Red       Color = "red"
	Green     Color = "green"
	Colorless Color = "colorless"
)

// MaxColors limits how many color identity tags a player card may carry.
const MaxColors = 6

type PlayerInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Colors      []Color `json:"colors,omitempty"`
	MoxfieldID  string  `json:"moxfield_id,omitempty"`
}

// NormalizeColors drops duplicate tags, keeps first-seen order and caps
// the list at MaxColors.
func NormalizeColors(colors []Color) []Color {
	if len(colors) == 0 {
		return nil
	}
	seen := mapset.NewSetWithSize[Color](len(colors))
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		if !seen.Add(c) {
			continue
		}
		out = append(out, c)
		if len(out) == MaxColors {
			break
		}
	}
	return out
}

func (p PlayerInfo) MoxfieldLink() string {
	if p.MoxfieldID == "" {
		return ""
	}
	return "https://moxfield.com/decks/" + p.MoxfieldID
}

func (p PlayerInfo) MoxfieldGoldfishLink() string {
	if p.MoxfieldID == "" {
		return ""
	}
	return "https://moxfield.com/decks/" + p.MoxfieldID + "/goldfish"
}

// PlayerStats is derived state: always the product of replaying the game
// log under the current score config, never set directly.
type PlayerStats struct {
	Elo   float64 `json:"elo"`
	Games uint32  `json:"games"`
	Wins  uint32  `json:"wins"`
}

// WinRate reports wins/games; ok is false before the first game.
func (s PlayerStats) WinRate() (float64, bool) {
	if s.Games == 0 {
		return 0, false
	}
	return float64(s.Wins) / float64(s.Games), true
}

// Player is a read view joining identity and derived stats.
type Player struct {
	ID    PlayerID    `json:"id"`
	Info  PlayerInfo  `json:"info"`
	Stats PlayerStats `json:"stats"`
	Rank  int         `json:"rank,omitempty"`
}
