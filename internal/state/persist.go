package state

import (
	"encoding/json"
	"fmt"

	"github.com/sentra-dev/sentra/internal/model"
)

// Storage keys. The state document and its schema version live side by side.
const (
	StateKey   = "sentra_app_state"
	VersionKey = "sentra_data_version"
)

// CurrentVersion is the schema version written with every saved state.
const CurrentVersion = "3"

// Migration upgrades a saved document to the version named by To.
type Migration struct {
	To string
	Up func(raw []byte) ([]byte, error)
}

// migrations is keyed by the version a step upgrades from. A saved version
// with no path to CurrentVersion is discarded.
var migrations = map[string]Migration{
	"2": {To: "3", Up: upgradeV2},
}

// Marshal encodes st as the persisted JSON document.
func Marshal(st model.AppState) ([]byte, error) {
	return json.Marshal(st)
}

// Unmarshal decodes a persisted JSON document. Missing collections decode
// as empty rather than nil.
func Unmarshal(data []byte) (model.AppState, error) {
	var st model.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return model.AppState{}, fmt.Errorf("decoding state: %w", err)
	}
	if st.VirtualAccounts == nil {
		st.VirtualAccounts = []model.VirtualAccount{}
	}
	if st.LocalBankAccounts == nil {
		st.LocalBankAccounts = []model.LocalBankAccount{}
	}
	if st.Transactions == nil {
		st.Transactions = []model.Transaction{}
	}
	return st, nil
}

// Migrate walks the migration table from version to CurrentVersion.
func Migrate(version string, raw []byte) ([]byte, error) {
	seen := map[string]bool{}
	for version != CurrentVersion {
		if seen[version] {
			return nil, fmt.Errorf("migration cycle at version %q", version)
		}
		seen[version] = true

		step, ok := migrations[version]
		if !ok {
			return nil, fmt.Errorf("no migration from version %q", version)
		}
		next, err := step.Up(raw)
		if err != nil {
			return nil, fmt.Errorf("migrating %s to %s: %w", version, step.To, err)
		}
		raw, version = next, step.To
	}
	return raw, nil
}

// upgradeV2 reads the prototype format, where money was a JSON number, and
// drops completion stamps left on transactions that are not completed.
func upgradeV2(raw []byte) ([]byte, error) {
	st, err := Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	for i := range st.Transactions {
		if st.Transactions[i].Status != model.StatusCompleted {
			st.Transactions[i].CompletedAt = nil
		}
	}
	return Marshal(st)
}

// load restores the saved state. Any storage or decoding problem is logged
// and yields an empty state; it is never returned to the caller.
func (s *Store) load() model.AppState {
	version, hasVersion, err := s.kv.Get(VersionKey)
	if err != nil {
		s.log.Error("failed to read state version", s.log.Args("key", VersionKey, "err", err))
		return model.Empty()
	}

	raw, hasState, err := s.kv.Get(StateKey)
	if err != nil {
		s.log.Error("failed to read saved state", s.log.Args("key", StateKey, "err", err))
		return model.Empty()
	}

	if !hasVersion || version != CurrentVersion {
		return s.upgrade(version, hasVersion, raw, hasState)
	}
	if !hasState {
		return model.Empty()
	}

	st, err := Unmarshal([]byte(raw))
	if err != nil {
		s.log.Error("discarding unreadable state", s.log.Args("key", StateKey, "err", err))
		return model.Empty()
	}
	return st
}

func (s *Store) upgrade(version string, hasVersion bool, raw string, hasState bool) model.AppState {
	if hasVersion && hasState {
		st, err := migrateSaved(version, raw)
		if err == nil {
			s.log.Info("migrated saved state", s.log.Args("from", version, "to", CurrentVersion))
			s.writeVersion()
			s.save(st)
			return st
		}
		s.log.Warn("discarding saved state", s.log.Args("version", version, "want", CurrentVersion, "err", err))
	}

	if err := s.kv.Remove(StateKey); err != nil {
		s.log.Error("failed to clear saved state", s.log.Args("key", StateKey, "err", err))
	}
	s.writeVersion()
	return model.Empty()
}

func migrateSaved(version, raw string) (model.AppState, error) {
	next, err := Migrate(version, []byte(raw))
	if err != nil {
		return model.AppState{}, err
	}
	return Unmarshal(next)
}

func (s *Store) writeVersion() {
	if err := s.kv.Set(VersionKey, CurrentVersion); err != nil {
		s.log.Error("failed to write state version", s.log.Args("key", VersionKey, "err", err))
	}
}

// save overwrites the persisted document with st. Failures are logged only.
func (s *Store) save(st model.AppState) {
	data, err := Marshal(st)
	if err != nil {
		s.log.Error("failed to encode state", s.log.Args("err", err))
		return
	}
	if err := s.kv.Set(StateKey, string(data)); err != nil {
		s.log.Error("failed to save state", s.log.Args("key", StateKey, "err", err))
	}
}
