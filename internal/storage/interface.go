package storage

import (
	"tourneyserver/internal/tournament"
)

// SnapshotStorage persists whole tournament snapshots. Load reports
// ok=false when the backing store holds no tournament yet.
type SnapshotStorage interface {
	Load() (snapshot tournament.Snapshot, ok bool, err error)
	Save(snapshot tournament.Snapshot) error
}
