package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/smhanov/xpression"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("xpr", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	registerFlags(fs)
	return fs
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "xpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// Not parallel: cases set XPR_* variables with t.Setenv.
func TestLoadConfigPrecedence(t *testing.T) {
	file := "backend: sql\nnumbered: true\n"

	tests := []struct {
		name     string
		file     string
		env      map[string]string
		args     []string
		expected xpression.Config
	}{
		{
			name:     "defaults",
			expected: xpression.Config{Backend: xpression.BackendTree},
		},
		{
			name:     "config file over defaults",
			file:     file,
			expected: xpression.Config{Backend: xpression.BackendSQL, Numbered: true},
		},
		{
			name:     "environment over config file",
			file:     file,
			env:      map[string]string{"XPR_BACKEND": "elastic", "XPR_VERBOSE": "true"},
			expected: xpression.Config{Backend: xpression.BackendElastic, Numbered: true, Verbose: true},
		},
		{
			name:     "flags over environment",
			file:     file,
			env:      map[string]string{"XPR_BACKEND": "elastic"},
			args:     []string{"--backend", "document", "--color"},
			expected: xpression.Config{Backend: xpression.BackendDocument, Numbered: true, Color: true},
		},
		{
			name:     "flag set to false over config file",
			file:     file,
			args:     []string{"--numbered=false"},
			expected: xpression.Config{Backend: xpression.BackendSQL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"XPR_BACKEND", "XPR_NUMBERED", "XPR_COLOR", "XPR_VERBOSE", "XPR_CONFIG"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			args := tt.args
			if tt.file != "" {
				args = append([]string{"--config", writeConfig(t, tt.file)}, args...)
			}

			logger, _ := test.NewNullLogger()
			cfg, err := loadConfig(viper.New(), newFlagSet(), args, logger)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("XPR_CONFIG", "")

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "missing config file",
			args:    []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
			message: "reading config file",
		},
		{
			name:    "unknown flag",
			args:    []string{"--format", "json"},
			message: "parsing command-line flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			_, err := loadConfig(viper.New(), newFlagSet(), tt.args, logger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
