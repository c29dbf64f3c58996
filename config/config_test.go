// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      Config
		expected Config
		invalid  bool
	}{
		{
			name:     "Zeroed",
			cfg:      Config{},
			expected: Config{FillFactor: DefaultFillFactor, LogLevel: DefaultLogLevel},
		},
		{
			name:     "Explicit",
			cfg:      Config{FillFactor: 8, LogLevel: "debug"},
			expected: Config{FillFactor: 8, LogLevel: "debug"},
		},
		{
			name:    "FillFactorTooSmall",
			cfg:     Config{FillFactor: 1},
			invalid: true,
		},
		{
			name:    "FillFactorNegative",
			cfg:     Config{FillFactor: -4},
			invalid: true,
		},
		{
			name:    "UnknownLogLevel",
			cfg:     Config{LogLevel: "loud"},
			invalid: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.cfg.Validate()

			if testCase.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, testCase.cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		cfg := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Equal(t, Config{FillFactor: DefaultFillFactor, LogLevel: DefaultLogLevel}, cfg)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dustgrid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fill-factor: 6\nlog-level: debug\n"), 0o644))

		cfg := Load(path)

		assert.Equal(t, Config{FillFactor: 6, LogLevel: "debug"}, cfg)
	})

	t.Run("PartialFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dustgrid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: warning\n"), 0o644))

		cfg := Load(path)

		assert.Equal(t, Config{FillFactor: DefaultFillFactor, LogLevel: "warning"}, cfg)
	})
}
