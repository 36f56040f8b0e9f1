package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
studies:
  - problem: poisson
    degree: 2
    levels: [4, 8, 16]
  - problem: helmholtz
    degree: 1
    levels: [8, 16]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Studies, 2)
	require.Equal(t, "poisson", cfg.Studies[0].Problem)
	require.Equal(t, 2, cfg.Studies[0].Degree)
	require.Equal(t, []int{4, 8, 16}, cfg.Studies[0].Levels)
	require.Equal(t, "helmholtz", cfg.Studies[1].Problem)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown problem": `
studies:
  - problem: transport
    degree: 1
    levels: [4, 8]
`,
		"bad degree": `
studies:
  - problem: poisson
    degree: 0
    levels: [4, 8]
`,
		"too few levels": `
studies:
  - problem: poisson
    degree: 1
    levels: [4]
`,
		"bad resolution": `
studies:
  - problem: poisson
    degree: 1
    levels: [4, 0]
`,
		"empty": `studies: []`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
