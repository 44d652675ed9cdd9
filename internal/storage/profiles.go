// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// PetProfileStore persists pet profiles in insertion order.
type PetProfileStore struct {
	store *Store
	path  string
}

// List returns all profiles.
func (s *PetProfileStore) List() []model.PetProfile {
	return readCollection[model.PetProfile](s.store, s.path)
}

// Save upserts a profile: an existing ID is replaced in place, a new one is
// appended.
func (s *PetProfileStore) Save(p *model.PetProfile) error {
	if p == nil {
		return nil
	}

	profiles := s.List()
	for i := range profiles {
		if profiles[i].ID == p.ID {
			profiles[i] = *p
			return writeCollection(s.store, s.path, profiles)
		}
	}
	profiles = append(profiles, *p)
	return writeCollection(s.store, s.path, profiles)
}

// Get returns the profile with the given ID, or ErrNotFound.
func (s *PetProfileStore) Get(id string) (*model.PetProfile, error) {
	for _, p := range s.List() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the profile with the given ID, or returns ErrNotFound.
func (s *PetProfileStore) Delete(id string) error {
	profiles := s.List()
	for i := range profiles {
		if profiles[i].ID == id {
			profiles = append(profiles[:i], profiles[i+1:]...)
			return writeCollection(s.store, s.path, profiles)
		}
	}
	return ErrNotFound
}
