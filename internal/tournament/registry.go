package tournament

import (
	"tourneyserver/internal/domain"
	"tourneyserver/internal/normalize"
)

// RegisterPlayer allocates the next free id (one past the current
// maximum) and inserts a default player card.
func (t *Tournament) RegisterPlayer(name string) (domain.PlayerID, error) {
	name = normalize.Name(name)
	if name == "" {
		return 0, &domain.InvalidPlayerNameError{Name: name}
	}
	if id, ok := t.names[name]; ok {
		return 0, &domain.PlayerAlreadyRegisteredError{Name: name, ID: id}
	}
	id := t.nextID()
	t.players[id] = domain.PlayerInfo{Name: name}
	t.names[name] = id
	t.stats[id] = t.config.NewPlayerStats()
	return id, nil
}

func (t *Tournament) nextID() domain.PlayerID {
	var next domain.PlayerID
	for id := range t.players {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func (t *Tournament) GetPlayerInfo(id domain.PlayerID) (domain.PlayerInfo, error) {
	info, ok := t.players[id]
	if !ok {
		return domain.PlayerInfo{}, &domain.InvalidPlayerIDError{ID: id}
	}
	return info, nil
}

func (t *Tournament) GetIDByName(name string) (domain.PlayerID, error) {
	id, ok := t.names[normalize.Name(name)]
	if !ok {
		return 0, &domain.PlayerNotRegisteredError{Name: name}
	}
	return id, nil
}

// SetPlayerInfo replaces the player card. A name change re-validates
// uniqueness and re-keys the name index in the same step.
func (t *Tournament) SetPlayerInfo(id domain.PlayerID, info domain.PlayerInfo) error {
	old, ok := t.players[id]
	if !ok {
		return &domain.InvalidPlayerIDError{ID: id}
	}
	info.Name = normalize.Name(info.Name)
	info.Colors = domain.NormalizeColors(info.Colors)
	if info.Name != old.Name {
		if info.Name == "" {
			return &domain.InvalidPlayerNameError{Name: info.Name}
		}
		if other, taken := t.names[info.Name]; taken && other != id {
			return &domain.PlayerAlreadyRegisteredError{Name: info.Name, ID: other}
		}
		delete(t.names, old.Name)
		t.names[info.Name] = id
	}
	t.players[id] = info
	return nil
}

// RenamePlayer re-keys the name index only. Stats stay untouched since
// both the stats map and the game log are keyed by id.
func (t *Tournament) RenamePlayer(from, to string) error {
	from = normalize.Name(from)
	to = normalize.Name(to)
	id, ok := t.names[from]
	if !ok {
		return &domain.PlayerNotRegisteredError{Name: from}
	}
	if to == "" {
		return &domain.InvalidPlayerNameError{Name: to}
	}
	if other, taken := t.names[to]; taken && other != id {
		return &domain.PlayerAlreadyRegisteredError{Name: to, ID: other}
	}
	info := t.players[id]
	info.Name = to
	t.players[id] = info
	delete(t.names, from)
	t.names[to] = id
	return nil
}

// RemovePlayer drops the player and every game they took part in, then
// replays the remaining log so the other players' stats reflect only
// the games that still exist.
func (t *Tournament) RemovePlayer(id domain.PlayerID) error {
	info, ok := t.players[id]
	if !ok {
		return &domain.InvalidPlayerIDError{ID: id}
	}
	delete(t.players, id)
	delete(t.names, info.Name)
	delete(t.stats, id)
	games := t.games[:0]
	for _, g := range t.games {
		if !g.Contains(id) {
			games = append(games, g)
		}
	}
	t.games = games
	return t.Reload()
}
