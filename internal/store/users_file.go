package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/HotaroAce/CineXerve/internal/model"
)

// userRecord is the on-disk shape of one user in users.json. Password
// hashes are stored as-is; createdAt uses RFC 3339.
type userRecord struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func usersFile(dir string) string { return filepath.Join(dir, "users.json") }

// LoadUsersFile merges users persisted under dir into the store,
// skipping emails that already exist (seeded accounts win). When the
// file does not exist yet it is created with the current users so
// the next start sees a valid file.
func (s *Store) LoadUsersFile(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	buf, err := os.ReadFile(usersFile(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return s.SaveUsersFile(dir)
	}
	if err != nil {
		return fmt.Errorf("read users file: %w", err)
	}
	var records []userRecord
	if err := json.Unmarshal(buf, &records); err != nil {
		return fmt.Errorf("parse users file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	known := make(map[string]bool, len(s.users))
	for _, u := range s.users {
		known[u.Email] = true
	}
	for _, r := range records {
		if known[r.Email] {
			continue
		}
		s.users = append(s.users, model.User{
			ID:           s.nextID.user,
			Email:        r.Email,
			Name:         r.Name,
			PasswordHash: r.PasswordHash,
			CreatedAt:    r.CreatedAt,
		})
		s.nextID.user++
		known[r.Email] = true
	}
	return nil
}

// SaveUsersFile writes all users to users.json under dir. Callers
// invoke it after any user mutation; failures are reported so they
// can be logged, never treated as fatal.
func (s *Store) SaveUsersFile(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	s.mu.RLock()
	records := make([]userRecord, 0, len(s.users))
	for _, u := range s.users {
		records = append(records, userRecord{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
	}
	s.mu.RUnlock()

	buf, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(usersFile(dir), buf, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
