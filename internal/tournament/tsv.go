package tournament

import (
	"errors"
	"strings"

	"tourneyserver/internal/domain"
)

// IngestTSV feeds historical results into the tournament. Each line is
// one game: four player names and the winner's name, tab separated.
// Lines with fewer than five fields are skipped, unknown names are
// registered on the fly and known names reused. The batch is not
// atomic: an error mid-way leaves every earlier record committed.
func (t *Tournament) IngestTSV(text string) error {
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(parts) < 5 {
			continue
		}
		rec, ok := t.resolveRecord(parts)
		if !ok {
			continue
		}
		if err := t.RegisterRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tournament) resolveRecord(parts []string) (domain.GameRecord, bool) {
	var ids [4]domain.PlayerID
	for i := 0; i < 4; i++ {
		id, err := t.getOrCreateID(parts[i])
		if err != nil {
			return domain.GameRecord{}, false
		}
		ids[i] = id
	}
	winner, err := t.getOrCreateID(parts[4])
	if err != nil {
		return domain.GameRecord{}, false
	}
	rec, err := domain.NewGameRecord(ids, winner)
	if err != nil {
		return domain.GameRecord{}, false
	}
	return rec, true
}

func (t *Tournament) getOrCreateID(name string) (domain.PlayerID, error) {
	id, err := t.RegisterPlayer(name)
	if err == nil {
		return id, nil
	}
	var already *domain.PlayerAlreadyRegisteredError
	if errors.As(err, &already) {
		return already.ID, nil
	}
	return 0, err
}
