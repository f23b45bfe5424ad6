package session

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	datepicker "github.com/goliatone/go-datepicker"
)

func newController(t *testing.T) *datepicker.Controller {
	t.Helper()
	instant := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	cfg, err := datepicker.NewConfig(
		datepicker.WithClock(func() time.Time { return instant }),
		datepicker.WithLocation(time.UTC),
		datepicker.WithMode(datepicker.ModeMulti),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	ctrl, err := datepicker.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ctrl
}

func TestStoreSaveLoad(t *testing.T) {
	store := Open(t.TempDir())

	ctrl := newController(t)
	dates := []datepicker.DateValue{
		datepicker.Date(2024, time.March, 4),
		datepicker.Date(2024, time.April, 9),
	}
	ctrl.SetDates(dates...)
	ctrl.Show()
	ctrl.ChangeView(datepicker.ViewYear)

	if err := store.Save("arrival", ctrl); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := newController(t)
	ok, err := store.Load("arrival", restored)
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(restored.Dates(), dates) {
		t.Fatalf("Dates() = %v; want %v", restored.Dates(), dates)
	}
	if restored.View() != datepicker.ViewYear || !restored.IsOpen() {
		t.Fatalf("View() = %v open=%v", restored.View(), restored.IsOpen())
	}

	// a fresh store over the same directory sees the saved session
	reopened := Open(store.BasePath())
	if ids := reopened.IDs(); !reflect.DeepEqual(ids, []string{"arrival"}) {
		t.Fatalf("IDs() = %v", ids)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := Open(t.TempDir())
	ok, err := store.Load("nothing", newController(t))
	if err != nil || ok {
		t.Fatalf("Load(missing) = %v, %v", ok, err)
	}
	if ids := store.IDs(); len(ids) != 0 {
		t.Fatalf("IDs() = %v", ids)
	}
}

func TestStoreDelete(t *testing.T) {
	store := Open(t.TempDir())
	ctrl := newController(t)

	for _, id := range []string{"b", "a"} {
		if err := store.Save(id, ctrl); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}
	if ids := store.IDs(); !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Fatalf("IDs() = %v", ids)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete twice: %v", err)
	}
	if ids := store.IDs(); !reflect.DeepEqual(ids, []string{"b"}) {
		t.Fatalf("IDs() after delete = %v", ids)
	}
}

func TestStoreInvalidID(t *testing.T) {
	store := Open(t.TempDir())
	ctrl := newController(t)

	for _, id := range []string{"", "../escape", ".hidden", "a/b"} {
		if err := store.Save(id, ctrl); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("Save(%q) error = %v", id, err)
		}
		if _, err := store.Load(id, ctrl); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("Load(%q) error = %v", id, err)
		}
		if err := store.Delete(id); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("Delete(%q) error = %v", id, err)
		}
	}
}

func TestPath(t *testing.T) {
	dir := t.TempDir()

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(`session_path = "` + filepath.ToSlash(dir) + `"`)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	got, err := Path(v)
	if err != nil || got != filepath.ToSlash(dir) {
		t.Fatalf("Path(config) = %q, %v", got, err)
	}

	envDir := filepath.Join(dir, "env")
	t.Setenv("DATEPICKER_SESSION_PATH", envDir)
	got, err = Path(v)
	if err != nil || got != envDir {
		t.Fatalf("Path(env) = %q, %v; want %q", got, err, envDir)
	}

	got, err = Path(nil)
	if err != nil || got != envDir {
		t.Fatalf("Path(nil) = %q, %v", got, err)
	}
}
