package analyzer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	idx := cfg.index()
	assert.True(t, idx[DefaultPackage]["Try2"])
	assert.True(t, idx[DefaultPackage]["Try2Err"])
	assert.True(t, idx[DefaultPackage]["Unwrap"])
	assert.False(t, idx[DefaultPackage]["Lift"])
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantKind ConfigErrorKind
		wantErr  bool
	}{
		{
			name: "valid",
			data: "targets:\n  - package: example.com/x\n    funcs: [Check]\n",
		},
		{
			name:     "bad yaml",
			data:     "targets: [",
			wantErr:  true,
			wantKind: KindParse,
		},
		{
			name:     "no targets",
			data:     "targets: []\n",
			wantErr:  true,
			wantKind: KindValidate,
		},
		{
			name:     "missing package",
			data:     "targets:\n  - funcs: [Check]\n",
			wantErr:  true,
			wantKind: KindValidate,
		},
		{
			name:     "no funcs",
			data:     "targets:\n  - package: example.com/x\n",
			wantErr:  true,
			wantKind: KindValidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig("test.yaml", []byte(tt.data))
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, []Target{{Package: "example.com/x", Funcs: []string{"Check"}}}, cfg.Targets)
				return
			}

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
			assert.Equal(t, "test.yaml", cerr.Path)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "try2check.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets:\n  - package: p\n    funcs: [A, B]\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]bool{"p": {"A": true, "B": true}}, cfg.index())
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindRead, cerr.Kind)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "read config")
}
