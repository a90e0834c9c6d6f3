package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biomass-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRun(t *testing.T, years int) string {
	t.Helper()
	in := model.NewCHPInputs()
	in.Financing.EconomicLife = years
	run := model.AllYearsResults{TeaModel: model.CombinedHeatAndPower, TeaInputs: in}
	for i := 0; i < years; i++ {
		run.YearlyResults = append(run.YearlyResults, model.YearlyResult{Year: i + 1, TotalFeedstock: 50, TotalFeedstockCost: 500})
	}
	raw, err := json.Marshal(run)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", "--run", writeRun(t, 2), "--years", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Combined Heat and Power (CHP), 2 years")
	assert.Contains(t, out, "Harvest Cost")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "Escalation Fuel")
}

func TestReportCommand(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.xlsx")
	out, err := execute(t, "report", "--run", writeRun(t, 3), "--years", "0", "--out", dst)
	require.NoError(t, err)
	assert.Contains(t, out, dst)

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetCellValue("Results", "C4")
	require.NoError(t, err)
	assert.Equal(t, "CHP", got)
}

func TestIncompleteRunFails(t *testing.T) {
	_, err := execute(t, "summary", "--run", writeRun(t, 2), "--years", "5")
	assert.ErrorIs(t, err, errIncomplete)
}

func TestRunSourceRequired(t *testing.T) {
	_, err := execute(t, "summary", "--run", "", "--run-id", "")
	assert.ErrorContains(t, err, "--run or --run-id is required")
}

func TestLedgerCommand(t *testing.T) {
	out, err := execute(t, "ledger", "--run", writeRun(t, 2))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "year,total_feedstock"))
}

func TestInvalidLogLevel(t *testing.T) {
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("log-level", "warn") })
	_, err := execute(t, "summary", "--run", writeRun(t, 1), "--years", "0", "--log-level", "loud")
	assert.ErrorContains(t, err, "log level")
}

func TestReportFailureLeavesNoFile(t *testing.T) {
	path := writeRun(t, 2)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	doc["sensitivity"] = map[string]any{"series": []map[string]any{
		{"name": "Capital Cost", "points": []map[string]float64{{"x": -10, "y": 0.1}, {"x": 10, "y": 0.2}}},
	}}
	raw, err = json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	t.Cleanup(func() { rootCmd.SetContext(context.Background()) })
	// cobra only propagates the root context to a subcommand whose context is
	// nil; clear the one left behind by earlier Execute calls in this package.
	reportCmd.SetContext(nil)

	dst := filepath.Join(t.TempDir(), "cecdata.xlsx")
	rootCmd.SetArgs([]string{"report", "--run", path, "--years", "0", "--out", dst})
	err = rootCmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, dst)
}
