package dbconn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopConn struct{}

func (nopConn) Connect(context.Context) error { return nil }
func (nopConn) NewQuery() Query               { return newRowsQuery(nil) }
func (nopConn) Close() error                  { return nil }

func nopFactory(Settings) Conn { return nopConn{} }

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(EngineMySQL, nopFactory)

	tests := []struct {
		name       string
		engineName string
		want       Engine
		wantErr    error
	}{
		{name: "enabled", engineName: "MySQL", want: EngineMySQL},
		{name: "known but not enabled", engineName: "unixODBC", wantErr: ErrEngineNotEnabled},
		{name: "unknown", engineName: "Oracle", wantErr: ErrUnsupportedEngine},
		{name: "case sensitive", engineName: "mysql", wantErr: ErrUnsupportedEngine},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Resolve(tc.engineName)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, EngineNone, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegistryOpen(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(EngineODBC, nopFactory)

	conn, err := r.Open(EngineODBC, mapSettings{})
	require.NoError(t, err)
	assert.NotNil(t, conn)

	_, err = r.Open(EngineMySQL, mapSettings{})
	require.ErrorIs(t, err, ErrEngineNotEnabled)

	_, err = r.Open(EngineNone, mapSettings{})
	require.ErrorIs(t, err, ErrUnsupportedEngine)
}

func TestRegistryEnabled(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Empty(t, r.Enabled())

	r.Register(EngineODBC, nopFactory)
	r.Register(EngineMySQL, nopFactory)
	assert.Equal(t, []Engine{EngineMySQL, EngineODBC}, r.Enabled())
}

func TestDefaultRegistryMatchesBuiltin(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	assert.Len(t, r.Enabled(), len(builtin))
}

func TestEngineString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MySQL", EngineMySQL.String())
	assert.Equal(t, "unixODBC", EngineODBC.String())
	assert.Equal(t, "none", EngineNone.String())
}
