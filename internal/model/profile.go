// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"github.com/google/uuid"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/assistant"
)

// PetProfile describes one of the user's pets. Which profile is active (the
// one supplying context to outbound requests) is a pointer held by the
// caller, never a field on the profile itself, so exactly zero or one
// profile is active at any time.
type PetProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Breed  string `json:"breed"`
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Notes  string `json:"notes"`
	Avatar string `json:"avatar,omitempty"`
}

// NewPetProfile creates a profile with a generated ID.
func NewPetProfile(name, petType, breed, age, weight, notes string) *PetProfile {
	return &PetProfile{
		ID:     uuid.NewString(),
		Name:   name,
		Type:   petType,
		Breed:  breed,
		Age:    age,
		Weight: weight,
		Notes:  notes,
	}
}

// ToContext converts the profile to the pet-context record attached to
// outbound requests. Weight and avatar are presentation-side only and do
// not travel.
func (p *PetProfile) ToContext() *assistant.PetContext {
	if p == nil {
		return nil
	}
	return &assistant.PetContext{
		Name:  p.Name,
		Type:  p.Type,
		Breed: p.Breed,
		Age:   p.Age,
		Notes: p.Notes,
	}
}
