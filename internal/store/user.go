package store

import "github.com/HotaroAce/CineXerve/internal/model"

// CreateUser registers a new account. The caller supplies the bcrypt
// hash; emails are unique.
func (s *Store) CreateUser(email, name, passwordHash string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return model.User{}, ErrEmailExists
		}
	}
	u := model.User{
		ID:           s.nextID.user,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    nowUTC(),
	}
	s.nextID.user++
	s.users = append(s.users, u)
	return u, nil
}

// UserByEmail returns the account registered under the email.
func (s *Store) UserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// UserByID returns the account with the given ID.
func (s *Store) UserByID(id uint64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// UpdateUser changes a user's display name and/or password hash. An
// empty passwordHash leaves the current one in place; name is always
// applied so it can be cleared.
func (s *Store) UpdateUser(email string, name *string, passwordHash string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}
		if name != nil {
			s.users[i].Name = *name
		}
		if passwordHash != "" {
			s.users[i].PasswordHash = passwordHash
		}
		return s.users[i], nil
	}
	return model.User{}, ErrNotFound
}
