package samsconfig

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/eugenenazirov/samsconf/internal/dbconn"
	"github.com/eugenenazirov/samsconf/internal/storage"
)

// SysconfDir is the directory holding sams2.conf. Packagers override it with
// -ldflags "-X github.com/eugenenazirov/samsconf/internal/samsconfig.SysconfDir=/etc/sams2".
var SysconfDir = "/usr/local/etc/sams2"

const confFileName = "sams2.conf"

const proxyQuery = "select s_sleep, s_parser_time from proxy where s_proxy_id="

// DefaultPath returns the configuration file path derived from SysconfDir.
func DefaultPath() string {
	return filepath.Join(SysconfDir, confFileName)
}

type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateLoaded
	stateFailed
)

// Option configures a Store.
type Option func(*Store)

// WithPath overrides the configuration file path.
func WithPath(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// WithRegistry overrides the database backends available to the store.
func WithRegistry(registry *dbconn.Registry) Option {
	return func(s *Store) {
		s.registry = registry
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithStorage replaces the attribute storage (primarily for tests).
func WithStorage(attrs storage.Storage) Option {
	return func(s *Store) {
		s.attrs = attrs
	}
}

// Store is the proxy configuration store. It is safe for concurrent use.
type Store struct {
	path     string
	attrs    storage.Storage
	registry *dbconn.Registry
	logger   *zap.Logger

	// loadMu serializes load sequences.
	loadMu sync.Mutex

	mu     sync.Mutex
	state  loadState
	loaded bool
	engine dbconn.Engine
}

// New creates an empty, unloaded store.
func New(opts ...Option) *Store {
	s := &Store{
		path:     DefaultPath(),
		attrs:    storage.NewMemoryStorage(),
		registry: dbconn.DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}

// Loaded reports whether a load sequence has completed successfully.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Load populates the store unless it is already loaded, in which case it
// returns nil without side effects. A caller arriving while another load runs
// waits for it and only loads again if that load failed.
func (s *Store) Load(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}
	if s.loading() {
		s.logger.Debug("configuration load in progress, waiting", zap.String("path", s.path))
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.Loaded() {
		return nil
	}
	return s.reload(ctx)
}

// Reload reads the configuration file and then the proxy settings from the
// database. The store is marked loaded only if both steps succeed. Existing
// attributes are overwritten, never cleared, so a failed database step leaves
// the file attributes in place.
func (s *Store) Reload(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	return s.reload(ctx)
}

func (s *Store) loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateLoading
}

// reload runs one load sequence. Callers hold loadMu, which is not
// reentrant: nothing on the load path may call Load, Reload or a getter.
func (s *Store) reload(ctx context.Context) error {
	done := s.beginLoad()

	if err := s.readFile(); err != nil {
		done(false)
		return err
	}
	if err := s.readDB(ctx); err != nil {
		done(false)
		return err
	}

	done(true)
	s.logger.Debug("configuration loaded", zap.String("path", s.path))
	return nil
}

// beginLoad enters the loading state. The returned func leaves it and must
// be called on every exit path.
func (s *Store) beginLoad() func(ok bool) {
	s.mu.Lock()
	s.state = stateLoading
	s.mu.Unlock()

	return func(ok bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ok {
			s.loaded = true
			s.state = stateLoaded
			return
		}
		s.state = stateFailed
	}
}

func (s *Store) readFile() error {
	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Error("failed to open config file", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	// lines have no length limit
	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadString('\n')
		if name, value, ok := parseLine(line); ok {
			s.SetString(name, value)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			s.logger.Error("failed to read config file", zap.String("path", s.path), zap.Error(readErr))
			return fmt.Errorf("%w: read %s: %w", ErrIO, s.path, readErr)
		}
	}

	name, ok := s.attrs.Lookup(KeyDBEngine)
	if !ok {
		s.logger.Error("unspecified DB engine", zap.String("key", KeyDBEngine), zap.String("path", s.path))
		return fmt.Errorf("%w: unspecified DB engine, check %s in %s", ErrConfig, KeyDBEngine, s.path)
	}

	engine, err := s.registry.Resolve(name)
	if err != nil {
		s.logger.Error("cannot use DB engine", zap.String("engine", name), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	s.logger.Debug("using DB engine", zap.Stringer("engine", engine))
	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
	return nil
}

func (s *Store) readDB(ctx context.Context) error {
	// proxyid is read from storage directly; the public getters would try to
	// load the store again.
	raw, ok := s.attrs.Lookup(KeyProxyID)
	if !ok {
		s.logger.Error("no proxy id defined", zap.String("key", KeyProxyID))
		return fmt.Errorf("%w: no proxy id defined, check %s", ErrConfig, KeyProxyID)
	}
	proxyID, err := scanInt(raw)
	if err != nil {
		s.logger.Error("proxy id is not an integer", zap.String("value", raw))
		return fmt.Errorf("%w: %s=%q is not an integer", ErrConfig, KeyProxyID, raw)
	}

	s.mu.Lock()
	engine := s.engine
	s.mu.Unlock()

	conn, err := s.registry.Open(engine, s.attrs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			s.logger.Warn("failed to close database connection", zap.Error(closeErr))
		}
	}()

	if err := conn.Connect(ctx); err != nil {
		s.logger.Error("failed to connect to database", zap.Stringer("engine", engine), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	query := conn.NewQuery()
	defer func() {
		if closeErr := query.Close(); closeErr != nil {
			s.logger.Warn("failed to close query", zap.Error(closeErr))
		}
	}()

	var sleep, parserTime int64
	if err := query.BindCol(1, &sleep); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if err := query.BindCol(2, &parserTime); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}

	stmt := proxyQuery + strconv.Itoa(proxyID)
	if err := query.SendQueryDirect(ctx, stmt); err != nil {
		s.logger.Error("proxy query failed", zap.String("query", stmt), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}

	found, err := query.Fetch()
	if err != nil {
		s.logger.Error("failed to fetch proxy settings", zap.Int("proxy_id", proxyID), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if !found {
		s.logger.Warn("no settings for proxy, something wrong?", zap.Int("proxy_id", proxyID))
		return fmt.Errorf("%w: proxy %d", ErrNotFound, proxyID)
	}

	s.SetInt(KeySleepTime, int(sleep))
	s.SetInt(KeyDaemonStep, int(parserTime))
	return nil
}

// ensureLoaded triggers a lazy load for callers that skipped the explicit
// Load at startup. Failures are logged; the getter still answers from
// whatever the store holds.
func (s *Store) ensureLoaded() {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return
	}
	if err := s.Load(context.Background()); err != nil {
		s.logger.Error("lazy configuration load failed", zap.Error(err))
	}
}

// GetString returns the raw value of name.
func (s *Store) GetString(name string) (string, error) {
	s.ensureLoaded()

	value, ok := s.attrs.Lookup(name)
	if !ok {
		s.logger.Debug("attribute not found", zap.String("name", name))
		return "", ErrAttrNotFound
	}
	return value, nil
}

// GetInt returns name parsed as a decimal integer. Trailing text after the
// number is ignored.
func (s *Store) GetInt(name string) (int, error) {
	raw, err := s.GetString(name)
	if err != nil {
		return 0, err
	}
	v, err := scanInt(raw)
	if err != nil {
		s.logger.Debug("attribute not parsed", zap.String("name", name), zap.String("value", raw))
		return 0, ErrAttrNotParsed
	}
	return v, nil
}

// GetDouble returns name parsed as a floating point number.
func (s *Store) GetDouble(name string) (float64, error) {
	raw, err := s.GetString(name)
	if err != nil {
		return 0, err
	}
	v, err := scanFloat(raw)
	if err != nil {
		s.logger.Debug("attribute not parsed", zap.String("name", name), zap.String("value", raw))
		return 0, ErrAttrNotParsed
	}
	return v, nil
}

// GetBool returns name parsed as an integer flag: zero is false, any other
// integer is true. Words such as "true" do not parse.
func (s *Store) GetBool(name string) (bool, error) {
	v, err := s.GetInt(name)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// SetString stores value under name. Setters never load the store.
func (s *Store) SetString(name, value string) {
	if name == dbconn.KeyDBPassword {
		s.logger.Debug("set attribute", zap.String("name", name))
	} else {
		s.logger.Debug("set attribute", zap.String("name", name), zap.String("value", value))
	}
	s.attrs.Set(name, value)
}

// SetInt stores value as a decimal integer.
func (s *Store) SetInt(name string, value int) {
	s.SetString(name, formatInt(value))
}

// SetDouble stores value in fixed-point notation with six decimals.
func (s *Store) SetDouble(name string, value float64) {
	s.SetString(name, formatFloat(value))
}

// SetBool stores value as "1" or "0".
func (s *Store) SetBool(name string, value bool) {
	s.SetString(name, formatBool(value))
}

// Engine returns the selected database engine, loading the store first if
// needed. It is dbconn.EngineNone until a configuration file naming an
// enabled engine has been read.
func (s *Store) Engine() dbconn.Engine {
	s.ensureLoaded()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine
}

// Snapshot returns a copy of all attributes without triggering a load.
func (s *Store) Snapshot() map[string]string {
	return s.attrs.Snapshot()
}
