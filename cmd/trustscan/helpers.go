package main

import (
	"fmt"

	"github.com/RohanBisht33/trustscan-app/internal/profiles"
)

// loadProfile returns the default scoring profile, or one loaded from path
// when provided.
func loadProfile(path string) (*profiles.Profile, error) {
	if path == "" {
		return profiles.Default(), nil
	}
	p, err := profiles.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}
