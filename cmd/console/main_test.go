package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_SesionCompleta(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "analyzed.csv")
	snap := filepath.Join(dir, "inventory_status.csv")
	require.NoError(t, os.WriteFile(data, []byte(
		"Region,Month,Year,Comment,Sentiment,Sentiment Score,Risk Analysis\n"+
			"North,January,2024,Port congestion,NEGATIVE,0.45,\n"), 0o644))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--data", data, "--snapshot", snap})
	cmd.SetIn(strings.NewReader("1\nNorth\nTea\n600\n300\n5\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Tea almacenado en North. Espacio disponible: 400 m³.")

	raw, err := os.ReadFile(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "North,Tea,600,300,400,300")
}
