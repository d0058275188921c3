package samsconfig

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/samsconf/internal/dbconn"
)

// newUnloadableStore returns a store whose lazy load always fails, so the
// accessors answer from setter-provided values only.
func newUnloadableStore(t *testing.T) *Store {
	t.Helper()
	return New(
		WithPath(filepath.Join(t.TempDir(), "missing.conf")),
		WithRegistry(dbconn.NewRegistry()),
	)
}

func TestIntRoundTrip(t *testing.T) {
	t.Parallel()

	store := newUnloadableStore(t)
	for _, v := range []int{0, 1, -1, 60, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		store.SetInt("value", v)
		got, err := store.GetInt("value")
		if err != nil {
			t.Fatalf("GetInt(%d) returned error: %v", v, err)
		}
		if got != v {
			t.Fatalf("expected %d, got %d", v, got)
		}
	}
}

func TestDoubleNearRoundTrip(t *testing.T) {
	t.Parallel()

	store := newUnloadableStore(t)
	for _, v := range []float64{0, 1.5, -2.25, 3.14159265, 1e6 + 0.123456} {
		store.SetDouble("value", v)
		got, err := store.GetDouble("value")
		if err != nil {
			t.Fatalf("GetDouble(%v) returned error: %v", v, err)
		}
		if math.Abs(got-v) > 1e-6 {
			t.Fatalf("expected %v within 1e-6, got %v", v, got)
		}
	}
}

func TestBoolRoundTrip(t *testing.T) {
	t.Parallel()

	store := newUnloadableStore(t)

	store.SetBool("flag", true)
	if got, err := store.GetBool("flag"); err != nil || !got {
		t.Fatalf("expected (true, nil), got (%v, %v)", got, err)
	}
	if raw, _ := store.GetString("flag"); raw != "1" {
		t.Fatalf("expected stored text 1, got %q", raw)
	}

	store.SetBool("flag", false)
	if got, err := store.GetBool("flag"); err != nil || got {
		t.Fatalf("expected (false, nil), got (%v, %v)", got, err)
	}
}

func TestBoolIsIntegerBased(t *testing.T) {
	t.Parallel()

	store := newUnloadableStore(t)

	store.SetString("flag", "5")
	if got, err := store.GetBool("flag"); err != nil || !got {
		t.Fatalf("expected nonzero integer to be true, got (%v, %v)", got, err)
	}

	store.SetString("flag", "true")
	got, err := store.GetBool("flag")
	if !errors.Is(err, ErrAttrNotParsed) || got {
		t.Fatalf("expected (false, ErrAttrNotParsed), got (%v, %v)", got, err)
	}
}

func TestGettersOnAbsentAttribute(t *testing.T) {
	t.Parallel()

	store := newUnloadableStore(t)

	if s, err := store.GetString("absent"); s != "" || !errors.Is(err, ErrAttrNotFound) {
		t.Fatalf("GetString: expected (\"\", ErrAttrNotFound), got (%q, %v)", s, err)
	}
	if i, err := store.GetInt("absent"); i != 0 || !errors.Is(err, ErrAttrNotFound) {
		t.Fatalf("GetInt: expected (0, ErrAttrNotFound), got (%d, %v)", i, err)
	}
	if d, err := store.GetDouble("absent"); d != 0 || !errors.Is(err, ErrAttrNotFound) {
		t.Fatalf("GetDouble: expected (0, ErrAttrNotFound), got (%v, %v)", d, err)
	}
	if b, err := store.GetBool("absent"); b || !errors.Is(err, ErrAttrNotFound) {
		t.Fatalf("GetBool: expected (false, ErrAttrNotFound), got (%v, %v)", b, err)
	}
}

func TestGetIntOnNonNumericText(t *testing.T) {
	t.Parallel()

	store := newUnloadableStore(t)
	store.SetString("sleeptime", "soon")

	got, err := store.GetInt("sleeptime")
	if got != 0 || !errors.Is(err, ErrAttrNotParsed) {
		t.Fatalf("expected (0, ErrAttrNotParsed), got (%d, %v)", got, err)
	}

	if d, err := store.GetDouble("sleeptime"); d != 0 || !errors.Is(err, ErrAttrNotParsed) {
		t.Fatalf("expected (0, ErrAttrNotParsed) from GetDouble, got (%v, %v)", d, err)
	}
}

func TestSettersDoNotLoad(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	path := writeConfig(t, "dbengine = MySQL\nproxyid = 1\n")
	store := newTestStore(t, path, registryWith(conn, dbconn.EngineMySQL), nil)

	store.SetString("a", "b")
	store.SetInt("b", 1)
	store.SetDouble("c", 1)
	store.SetBool("d", true)

	if store.Loaded() {
		t.Fatalf("setters must not mark the store loaded")
	}
	if conn.connects != 0 {
		t.Fatalf("setters must not trigger a load, got %d connects", conn.connects)
	}
	if _, ok := store.Snapshot()[KeyDBEngine]; ok {
		t.Fatalf("setters must not read the config file")
	}
}
