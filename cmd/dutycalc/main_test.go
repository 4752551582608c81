package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"customsduty/internal/duty"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFlags(t *testing.T) {
	_, err := parseFlags([]string{"-country", "CN"})
	assert.EqualError(t, err, "-cth is required")

	_, err = parseFlags([]string{"-cth", "0101", "-format", "pdf"})
	assert.Error(t, err)

	opts, err := parseFlags([]string{"-cth", "0101", "-value", "5000", "-format", "csv"})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, opts.value)
	assert.Equal(t, "csv", opts.format)
}

func TestRun_JSON(t *testing.T) {
	t.Setenv("DUTYCALC_LOG_LEVEL", "error")
	dir := t.TempDir()
	tariff := writeFile(t, dir, "tariff.json", `{"bcd_rate":10,"scd_rate":10,"igst_rate":18}`)
	notn := writeFile(t, dir, "notn.json", `{"rs_bcdd":[{"notn":"057/2017","slno":"3","rta":5}]}`)

	var out bytes.Buffer
	err := run([]string{"-cth", "85171300", "-country", "japan", "-tariff", tariff,
		"-notification", notn, "-notn", "057/2017"}, &out)
	require.NoError(t, err)

	var res duty.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "85171300", res.Meta.CTH)
	assert.Equal(t, "JP,JAPAN", res.Meta.Country)
	assert.Equal(t, "057/2017-3", res.Rows[0].NotificationLabel)
	assert.Equal(t, 5000.0, res.Rows[0].Amount)
}

func TestRun_XLSXToFile(t *testing.T) {
	t.Setenv("DUTYCALC_LOG_LEVEL", "error")
	dir := t.TempDir()
	tariff := writeFile(t, dir, "tariff.json", `{"bcd_rate":10}`)
	outPath := filepath.Join(dir, "out.xlsx")

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-cth", "0101", "-tariff", tariff, "-format", "xlsx", "-out", outPath}, &stdout))
	assert.Zero(t, stdout.Len())

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"0101"}, f.GetSheetList())
}

func TestRun_InvalidPayload(t *testing.T) {
	t.Setenv("DUTYCALC_LOG_LEVEL", "error")
	dir := t.TempDir()
	tariff := writeFile(t, dir, "tariff.json", `[1,2,3]`)

	err := run([]string{"-cth", "0101", "-tariff", tariff}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tariff payload must be a JSON object")
}

func TestRun_MissingFile(t *testing.T) {
	t.Setenv("DUTYCALC_LOG_LEVEL", "error")
	err := run([]string{"-cth", "0101", "-tariff", "/nonexistent/tariff.json"}, &bytes.Buffer{})
	assert.Error(t, err)
}
