package switchprofile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/store"
)

// Switch activates a profile by id or (unique) name prefix. On partial
// remote failure the local snapshot is reconciled with a refresh before the
// error is surfaced.
type Switch struct {
	Target string

	Store  *store.Store
	ShowID bool
}

func (s *Switch) Do(ctx context.Context) error {
	id, err := s.resolve()
	if err != nil {
		return err
	}

	if _, err := s.Store.SwitchProfile(ctx, id); err != nil {
		var partial *store.PartialSwitchError
		if errors.As(err, &partial) {
			// Some flags were written remotely; re-list so the local
			// snapshot reflects whatever actually landed.
			if rerr := s.Store.RefreshAll(ctx); rerr != nil {
				return errors.Join(err, rerr)
			}
		}
		return err
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID}
	pp.Title("profiles")
	pp.Profiles(id, s.Store.Profiles()...)
	return nil
}

func (s *Switch) resolve() (string, error) {
	target := strings.TrimSpace(s.Target)
	if target == "" {
		return "", errors.New("switch: profile id or name required")
	}

	var match string
	for _, p := range s.Store.Profiles() {
		if p.ID == target {
			return p.ID, nil
		}
		if strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(target)) {
			if match != "" {
				return "", fmt.Errorf("switch: %q matches more than one profile", target)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("switch: no profile matches %q", target)
	}
	return match, nil
}
