package replay

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/game"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

// eventYAML is the on-disk form of an Event; actions are stored by name.
type eventYAML struct {
	Tick   uint64 `yaml:"tick"`
	Action string `yaml:"action"`
}

// EncodeEvents serializes an action log as YAML.
func EncodeEvents(events []Event) ([]byte, error) {
	out := make([]eventYAML, len(events))
	for i, ev := range events {
		out[i] = eventYAML{Tick: ev.Tick, Action: ev.Action.String()}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode events: %w", err)
	}
	return data, nil
}

// DecodeEvents parses an action log written by EncodeEvents.
func DecodeEvents(data []byte) ([]Event, error) {
	var in []eventYAML
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("replay: cannot decode events: %w", err)
	}

	events := make([]Event, 0, len(in))
	for i, ev := range in {
		a, ok := core.ParseAction(ev.Action)
		if !ok || !a.IsGameplay() {
			return nil, fmt.Errorf("replay: event %d: unknown action %q", i, ev.Action)
		}
		events = append(events, Event{Tick: ev.Tick, Action: a})
	}
	return events, nil
}

// ToStorage converts a recording to its database row.
func ToStorage(rec Recording) (storage.Recording, error) {
	events, err := EncodeEvents(rec.Events)
	if err != nil {
		return storage.Recording{}, err
	}
	return storage.Recording{
		ID:             rec.ID,
		Frontend:       rec.Frontend,
		Seed:           rec.Seed,
		TickRate:       rec.TickRate,
		Width:          rec.Rules.Width,
		Height:         rec.Rules.Height,
		DropIntervalMS: int(rec.Rules.DropInterval / time.Millisecond),
		PointsPerRow:   rec.Rules.PointsPerRow,
		FinalTick:      rec.FinalTick,
		Score:          rec.Score,
		RowsCleared:    rec.RowsCleared,
		PiecesLocked:   rec.PiecesLocked,
		GameOver:       rec.GameOver,
		Events:         events,
		CreatedAt:      rec.CreatedAt,
	}, nil
}

// FromStorage converts a database row back into a recording.
func FromStorage(row storage.Recording) (Recording, error) {
	events, err := DecodeEvents(row.Events)
	if err != nil {
		return Recording{}, fmt.Errorf("recording %d: %w", row.ID, err)
	}
	return Recording{
		ID:       row.ID,
		Frontend: row.Frontend,
		Seed:     row.Seed,
		TickRate: row.TickRate,
		Rules: game.Rules{
			Width:        row.Width,
			Height:       row.Height,
			DropInterval: time.Duration(row.DropIntervalMS) * time.Millisecond,
			PointsPerRow: row.PointsPerRow,
		},
		FinalTick:    row.FinalTick,
		Score:        row.Score,
		RowsCleared:  row.RowsCleared,
		PiecesLocked: row.PiecesLocked,
		GameOver:     row.GameOver,
		Events:       events,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// Journal is where finished sessions are written.
type Journal interface {
	SaveRecording(r storage.Recording) (int64, error)
}

// Save encodes rec and appends it to j.
func Save(j Journal, rec Recording) (int64, error) {
	row, err := ToStorage(rec)
	if err != nil {
		return 0, err
	}
	return j.SaveRecording(row)
}

// Load reads and decodes one recording from the store.
func Load(s *storage.Store, id int64) (Recording, error) {
	row, err := s.Recording(id)
	if err != nil {
		return Recording{}, err
	}
	return FromStorage(row)
}
