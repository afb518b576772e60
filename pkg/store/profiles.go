package store

import (
	"context"

	"tableflip.dev/keep/pkg/model"
	"tableflip.dev/keep/pkg/remote"
)

// Profiles returns a copy of the current profile snapshot.
func (s *Store) Profiles() []model.Profile {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()
	out := make([]model.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// ActiveProfile returns the active profile, or nil when none is set.
func (s *Store) ActiveProfile() *model.Profile {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()
	for _, p := range s.profiles {
		if p.ID == s.active {
			cp := p
			return &cp
		}
	}
	return nil
}

// AddProfile creates a profile. New profiles are always created inactive;
// use SwitchProfile to activate one.
func (s *Store) AddProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	p.Active = false

	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()

	fields, err := marshalFields(&p)
	if err != nil {
		return model.Profile{}, &RemoteWriteError{Op: "create", Collection: remote.Profiles, Err: err}
	}
	id, err := s.client.Create(ctx, remote.Profiles, fields)
	if err != nil {
		return model.Profile{}, &RemoteWriteError{Op: "create", Collection: remote.Profiles, Err: err}
	}
	p.ID = id
	s.profiles = append(s.profiles, p)
	s.emit(remote.Profiles)
	return p, nil
}

// RemoveProfile deletes a profile. If the removed profile was active, the
// active pointer becomes empty; no other profile is promoted. Ledger
// entries and reminders owned by the profile are left in place (see
// Orphans).
func (s *Store) RemoveProfile(ctx context.Context, id string) error {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()

	idx := -1
	for i, p := range s.profiles {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	if err := s.client.Delete(ctx, remote.Profiles, id); err != nil {
		return &RemoteWriteError{Op: "delete", Collection: remote.Profiles, Err: err}
	}
	s.profiles = append(s.profiles[:idx], s.profiles[idx+1:]...)
	if s.active == id {
		s.active = ""
	}
	s.emit(remote.Profiles)
	return nil
}

// SwitchProfile atomically activates the profile with the given id and
// deactivates every other profile, persisting all flags remotely before
// touching local state. On partial remote failure it returns a
// *PartialSwitchError and leaves the local snapshot unchanged; callers
// reconcile by calling RefreshAll.
func (s *Store) SwitchProfile(ctx context.Context, id string) (*model.Profile, error) {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()

	found := false
	for _, p := range s.profiles {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	var failed []string
	for _, p := range s.profiles {
		fields, err := marshalFields(map[string]bool{"isActive": p.ID == id})
		if err == nil {
			err = s.client.Update(ctx, remote.Profiles, p.ID, fields)
		}
		if err != nil {
			failed = append(failed, p.ID)
		}
	}
	if len(failed) > 0 {
		return nil, &PartialSwitchError{Failed: failed}
	}

	var activated *model.Profile
	for i := range s.profiles {
		s.profiles[i].Active = s.profiles[i].ID == id
		if s.profiles[i].Active {
			cp := s.profiles[i]
			activated = &cp
		}
	}
	s.active = id
	s.emit(remote.Profiles)
	return activated, nil
}
