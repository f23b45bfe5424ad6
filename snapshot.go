package datepicker

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the persistent part of a controller. Dates are ISO strings so
// the payload stays readable by other tools.
type Snapshot struct {
	Reference string   `msgpack:"ref"`
	View      string   `msgpack:"view"`
	Active    string   `msgpack:"active,omitempty"`
	Mode      string   `msgpack:"mode"`
	Dates     []string `msgpack:"dates,omitempty"`
	Open      bool     `msgpack:"open,omitempty"`
}

// Snapshot captures the controller state.
func (c *Controller) Snapshot() Snapshot {
	dates := c.selection.All()
	out := Snapshot{
		Reference: c.reference.String(),
		View:      c.view.String(),
		Active:    c.active.String(),
		Mode:      c.selection.Mode().String(),
		Open:      c.open,
	}
	for _, d := range dates {
		out.Dates = append(out.Dates, d.String())
	}
	return out
}

// Restore replaces the controller state with snap. The selection is
// re-normalized for the configured mode. Nothing is rendered.
func (c *Controller) Restore(snap Snapshot) error {
	reference, err := ParseISO(snap.Reference)
	if err != nil {
		return fmt.Errorf("%w: reference: %v", ErrInvalidSnapshot, err)
	}
	view, err := ParseViewLevel(snap.View)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	mode, err := ParseSelectionMode(snap.Mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var active DateValue
	if snap.Active != "" {
		if active, err = ParseISO(snap.Active); err != nil {
			return fmt.Errorf("%w: active: %v", ErrInvalidSnapshot, err)
		}
	}

	dates := make([]DateValue, 0, len(snap.Dates))
	for _, raw := range snap.Dates {
		d, err := ParseISO(raw)
		if err != nil {
			return fmt.Errorf("%w: dates: %v", ErrInvalidSnapshot, err)
		}
		dates = append(dates, d)
	}

	c.reference = reference
	c.view = view
	c.active = active
	c.open = snap.Open
	c.selection = NewSelectionSet(mode, dates...).WithMode(c.cfg.Mode)
	return nil
}

// MarshalState encodes the snapshot with msgpack.
func (c *Controller) MarshalState() ([]byte, error) {
	return msgpack.Marshal(c.Snapshot())
}

// RestoreState decodes data produced by MarshalState.
func (c *Controller) RestoreState(data []byte) error {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return c.Restore(snap)
}

// SignState encodes the state as base64 with an HMAC signature so it can
// round trip through an untrusted client: base64.signature
func (c *Controller) SignState(key []byte) (string, error) {
	packed, err := c.MarshalState()
	if err != nil {
		return "", err
	}
	b64 := base64.RawURLEncoding.EncodeToString(packed)
	return b64 + "." + stateSignature(key, packed), nil
}

// RestoreSignedState verifies and restores a value from SignState.
func (c *Controller) RestoreSignedState(key []byte, encoded string) error {
	payload, sig, ok := strings.Cut(encoded, ".")
	if !ok {
		return fmt.Errorf("%w: missing signature", ErrInvalidSnapshot)
	}
	packed, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if !hmac.Equal([]byte(sig), []byte(stateSignature(key, packed))) {
		return fmt.Errorf("%w: signature mismatch", ErrInvalidSnapshot)
	}
	return c.RestoreState(packed)
}

func stateSignature(key, data []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
}
