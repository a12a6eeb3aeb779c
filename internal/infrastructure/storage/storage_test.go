package storage

import (
	"context"
	"testing"

	"churchdata/internal/app/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestDriver(t *testing.T) {
	tests := []struct {
		uri     string
		driver  string
		dsn     string
		wantErr bool
	}{
		{uri: "postgres://u:p@localhost:5432/church", driver: DriverPostgres, dsn: "postgres://u:p@localhost:5432/church"},
		{uri: "postgresql://localhost/church", driver: DriverPostgres, dsn: "postgresql://localhost/church"},
		{uri: "sqlite://church.db", driver: DriverSQLite, dsn: "church.db"},
		{uri: "sqlite://:memory:", driver: DriverSQLite, dsn: ":memory:"},
		{uri: "sqlite://", wantErr: true},
		{uri: "mysql://localhost/church", wantErr: true},
		{uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			driver, dsn, err := Driver(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{DB: config.DB{DatabaseURI: "sqlite://:memory:"}}

	s, err := Open(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, DriverSQLite, s.Driver)
	assert.NoError(t, s.Ping(context.Background()))

	members, err := s.Members.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
}
