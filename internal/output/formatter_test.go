package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"console-verbose": "console",
		"VERBOSE":         "console",
		"text":            "console-lite",
		"csv-summary":     "csv",
		"projection":      "detailed-csv",
		" json-pretty ":   "json",
		"html":            "html",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, "alias %q did not resolve", alias)
		assert.Equal(t, want, f.Name(), "alias %q", alias)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "csv", ExtensionFor("projection"))
	assert.Equal(t, "csv", ExtensionFor("csv"))
	assert.Equal(t, "txt", ExtensionFor("console-lite"))
	assert.Equal(t, "html", ExtensionFor("html-report"))
	assert.Equal(t, "json", ExtensionFor("json"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "verbose")
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "FIRE PLAN SUMMARY\n"))
	assert.Contains(t, content, "Baseline: FireNumber=$1,000,000 Progress=10.0% TimeToFire=12.9 years")
	assert.Contains(t, content, "Stalled: FireNumber=$800,000 Progress=0.0% TimeToFire=N/A")
	assert.Contains(t, content, "Fastest path: Already There (target already reached)")

	// scenarios are listed by name
	assert.Less(t, strings.Index(content, "Already There:"), strings.Index(content, "Baseline:"))
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "FIRE PLAN REPORT: Test plan")
	assert.Contains(t, content, "KEY ASSUMPTIONS")
	assert.Contains(t, content, "SCENARIO COMPARISON")
	assert.Contains(t, content, "SCENARIO 1: Baseline")
	assert.Contains(t, content, "SCENARIO 3: Already There")
	assert.Contains(t, content, "Coast FIRE reached")
	assert.Contains(t, content, "Standard (Trinity Study)")
	assert.Contains(t, content, "Contribution Limits")
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, "Already There", records[1][0])
	assert.Equal(t, "Baseline", records[2][0])
	assert.Equal(t, "Stalled", records[3][0])

	baseline := records[2]
	assert.Equal(t, "traditional", baseline[1])
	assert.Equal(t, "1000000.00", baseline[4])
	assert.Equal(t, "156", baseline[11])
	assert.Equal(t, "13", baseline[12])
	assert.Equal(t, "true", baseline[13])

	stalled := records[3]
	assert.Equal(t, "", stalled[10], "infinite years is an empty field")
	assert.Equal(t, "0", stalled[11])
	assert.Equal(t, "false", stalled[13])
}

func TestCSVDetailedExporter(t *testing.T) {
	report := buildTestReport(t)
	out, err := CSVDetailedExporter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	// 1 header + 1 (already there) + 14 (baseline) + 31 (stalled)
	require.Len(t, records, 1+1+14+31)
	assert.Equal(t, []string{"Already There", "0", "2000000", "1200000.00", "166.67", "true"}, records[1])
	assert.Equal(t, []string{"Baseline", "13", "1007769", "1000000.00", "100.78", "true"}, records[15])
	assert.Equal(t, "Stalled", records[len(records)-1][0])
	assert.Equal(t, "30", records[len(records)-1][1])
}

func TestJSONFormatterWritesNullForNonFiniteValues(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	var decoded struct {
		Name           string `json:"name"`
		Currency       string `json:"currency"`
		Recommendation struct {
			Scenario string `json:"scenario"`
		} `json:"recommendation"`
		Scenarios []struct {
			Name       string `json:"name"`
			TimeToFire struct {
				YearsToFire *float64 `json:"years_to_fire"`
				Months      int      `json:"months"`
				Reachable   bool     `json:"reachable"`
			} `json:"time_to_fire"`
			Coast struct {
				CoastFireNumber *float64 `json:"coast_fire_number"`
			} `json:"coast"`
			Projection []domain.ProjectionPoint `json:"projection"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "Test plan", decoded.Name)
	assert.Equal(t, "USD", decoded.Currency)
	assert.Equal(t, "Already There", decoded.Recommendation.Scenario)
	require.Len(t, decoded.Scenarios, 3)

	baseline := decoded.Scenarios[0]
	require.NotNil(t, baseline.TimeToFire.YearsToFire)
	assert.InDelta(t, 12.93, *baseline.TimeToFire.YearsToFire, 0.01)
	assert.Equal(t, 156, baseline.TimeToFire.Months)
	require.NotNil(t, baseline.Coast.CoastFireNumber)
	assert.InDelta(t, 93663, *baseline.Coast.CoastFireNumber, 1)
	assert.Len(t, baseline.Projection, 14)

	stalled := decoded.Scenarios[1]
	assert.Nil(t, stalled.TimeToFire.YearsToFire)
	assert.False(t, stalled.TimeToFire.Reachable)
	assert.Contains(t, string(out), `"years_to_fire": null`)
}

func TestJSONFormatterWritesNullForOverflowedAmounts(t *testing.T) {
	cfg := &domain.Configuration{
		Name: "Overflow",
		Scenarios: []domain.Scenario{{
			Name:                "Huge expenses",
			FireType:            domain.FireTraditional,
			AnnualExpenses:      1e307,
			CurrentAge:          30,
			RetirementAge:       65,
			CurrentSavings:      100000,
			MonthlyContribution: 3000,
			ReturnRatePercent:   7,
			LimitsYear:          2025,
		}},
	}
	report, err := calculation.NewCalculationEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, math.IsInf(report.Scenarios[0].FireNumber.FireNumber, 1))

	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded struct {
		Scenarios []struct {
			FireNumber struct {
				AnnualExpenses   float64  `json:"annual_expenses"`
				FireNumber       *float64 `json:"fire_number"`
				AnnualWithdrawal *float64 `json:"annual_withdrawal"`
			} `json:"fire_number"`
			Withdrawal struct {
				PortfolioValue *float64 `json:"portfolio_value"`
				AnnualAmount   *float64 `json:"annual_amount"`
			} `json:"withdrawal"`
			WithdrawalTable []struct {
				MonthlyAmount *float64 `json:"monthly_amount"`
			} `json:"withdrawal_scenarios"`
			Projection []struct {
				Portfolio  *float64 `json:"portfolio"`
				FireTarget *float64 `json:"fire_target"`
			} `json:"projection"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Scenarios, 1)

	sc := decoded.Scenarios[0]
	assert.Equal(t, 1e307, sc.FireNumber.AnnualExpenses)
	assert.Nil(t, sc.FireNumber.FireNumber)
	assert.Nil(t, sc.FireNumber.AnnualWithdrawal)
	assert.Nil(t, sc.Withdrawal.PortfolioValue)
	assert.Nil(t, sc.Withdrawal.AnnualAmount)
	require.Len(t, sc.WithdrawalTable, 5)
	assert.Nil(t, sc.WithdrawalTable[0].MonthlyAmount)
	require.NotEmpty(t, sc.Projection)
	require.NotNil(t, sc.Projection[0].Portfolio)
	assert.Equal(t, 100000.0, *sc.Projection[0].Portfolio)
	assert.Nil(t, sc.Projection[0].FireTarget)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "<title>FIRE Plan Report: Test plan</title>")
	assert.Contains(t, content, "Key Assumptions")
	assert.Contains(t, content, "Scenario Summary")
	assert.Contains(t, content, "Wealth Projection")
	assert.Contains(t, content, "$1,000,000")
	assert.Contains(t, content, "That&#39;s 156 months")
	assert.Contains(t, content, `id="report-data"`)
	for _, a := range DefaultAssumptions[:2] {
		assert.Contains(t, content, a)
	}
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	err := GenerateReport(&domain.PlanReport{}, "definitely-not-a-format", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.PlanReport) ([]byte, error) {
		return []byte(r.Name), nil
	}}
	out, err := f.Format(&domain.PlanReport{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", string(out))
	assert.Equal(t, "names", f.Name())
}

func TestAnalyzeScenarios(t *testing.T) {
	report := buildTestReport(t)
	rec := AnalyzeScenarios(report)
	assert.Equal(t, "Already There", rec.ScenarioName)
	assert.Equal(t, 0.0, rec.YearsToFire)

	report.Scenarios = report.Scenarios[:2]
	rec = AnalyzeScenarios(report)
	assert.Equal(t, "Baseline", rec.ScenarioName)
	assert.InDelta(t, 12.93, rec.YearsToFire, 0.01)

	report.Scenarios = report.Scenarios[1:]
	assert.Empty(t, AnalyzeScenarios(report).ScenarioName)
}
