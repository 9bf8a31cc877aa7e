package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterJSON = `{
  "name": "Water",
  "atoms": [
    {"id": 1, "element": "O"},
    {"id": 2, "element": "H"},
    {"id": 3, "element": "H"}
  ],
  "bonds": [
    {"id": 1, "atom1_id": 1, "atom2_id": 2, "order": 1},
    {"id": 2, "atom1_id": 1, "atom2_id": 3, "order": 1}
  ]
}`

const waterMol = `Water
  molcraft

  3  2  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0
    0.7572    0.5865    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
   -0.7572    0.5865    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  1  0  0  0  0
  1  3  1  0  0  0  0
M  END
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommandText(t *testing.T) {
	path := writeFile(t, "water.json", waterJSON)

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Formula:  H2O")
	assert.Contains(t, out, "Stable:   true")
	assert.Contains(t, out, "Matches:  Water")
}

func TestValidateCommandJSON(t *testing.T) {
	path := writeFile(t, "water.json", waterJSON)

	out, err := runCLI(t, "validate", path, "-o", "json")
	require.NoError(t, err)

	var report struct {
		Result struct {
			Formula  string `json:"formula"`
			IsStable bool   `json:"is_stable"`
		} `json:"result"`
		Matches []string `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "H2O", report.Result.Formula)
	assert.True(t, report.Result.IsStable)
	assert.Equal(t, []string{"Water"}, report.Matches)
}

func TestValidateCommandMolfileInput(t *testing.T) {
	path := writeFile(t, "water.mol", waterMol)

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Formula:  H2O")
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := runCLI(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFormulaCommand(t *testing.T) {
	path := writeFile(t, "water.json", waterJSON)

	out, err := runCLI(t, "formula", path)
	require.NoError(t, err)
	assert.Equal(t, "H2O\n", out)
}

func TestRecognizeCommand(t *testing.T) {
	path := writeFile(t, "water.json", waterJSON)

	out, err := runCLI(t, "recognize", path)
	require.NoError(t, err)
	assert.Equal(t, "Water\n", out)
}

func TestRecognizeCommandNoMatch(t *testing.T) {
	path := writeFile(t, "xe.json", `{"atoms":[{"id":1,"element":"Xe"}],"bonds":[]}`)

	out, err := runCLI(t, "recognize", path)
	require.NoError(t, err)
	assert.Equal(t, "no match\n", out)
}

func TestElementsCommand(t *testing.T) {
	out, err := runCLI(t, "elements")
	require.NoError(t, err)
	assert.Contains(t, out, "C ")
	assert.Contains(t, out, "valence 4")
}

func TestElementsCommandSingleSymbol(t *testing.T) {
	out, err := runCLI(t, "elements", "cl")
	require.NoError(t, err)
	assert.Contains(t, out, "Cl")
	assert.Contains(t, out, "valence 7")
	assert.Contains(t, out, "max total order 1")
}

func TestElementsCommandUnknownSymbol(t *testing.T) {
	_, err := runCLI(t, "elements", "Xq")
	assert.Error(t, err)
}
