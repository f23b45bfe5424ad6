// Package session persists picker state between CLI invocations.
package session

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
	"github.com/spf13/viper"

	datepicker "github.com/goliatone/go-datepicker"
)

const defaultPath = "~/.datepicker"

var (
	// ErrInvalidID indicates an element id that cannot be used as a file name.
	ErrInvalidID = errors.New("session: invalid id")

	validID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// Path resolves the session directory: DATEPICKER_SESSION_PATH, then the
// session_path setting, then ~/.datepicker.
func Path(v *viper.Viper) (string, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetDefault("session_path", defaultPath)
	v.SetEnvPrefix("DATEPICKER")
	if err := v.BindEnv("session_path"); err != nil {
		return "", err
	}
	return homedir.Expand(v.GetString("session_path"))
}

// Store keeps one msgpack snapshot per element id.
type Store struct {
	d    *diskv.Diskv
	base string
}

func Open(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024,
		}),
		base: basePath,
	}
}

func (s *Store) BasePath() string { return s.base }

// Load restores ctrl from the snapshot saved under id. It reports false when
// there is none.
func (s *Store) Load(id string, ctrl *datepicker.Controller) (bool, error) {
	if !validID.MatchString(id) {
		return false, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if !s.d.Has(id) {
		return false, nil
	}
	data, err := s.d.Read(id)
	if err != nil {
		return false, fmt.Errorf("session: read %s: %w", id, err)
	}
	if err := ctrl.RestoreState(data); err != nil {
		return false, fmt.Errorf("session: restore %s: %w", id, err)
	}
	return true, nil
}

// Save writes ctrl's snapshot under id.
func (s *Store) Save(id string, ctrl *datepicker.Controller) error {
	if !validID.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	data, err := ctrl.MarshalState()
	if err != nil {
		return err
	}
	return s.d.Write(id, data)
}

// Delete forgets id. Deleting a missing id is not an error.
func (s *Store) Delete(id string) error {
	if !validID.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if !s.d.Has(id) {
		return nil
	}
	return s.d.Erase(id)
}

// IDs lists saved sessions in sorted order.
func (s *Store) IDs() []string {
	var ids []string
	for key := range s.d.Keys(nil) {
		ids = append(ids, key)
	}
	sort.Strings(ids)
	return ids
}
