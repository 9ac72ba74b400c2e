package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() ProfileData {
	return ProfileData{
		Title: "Base",
		Sections: []SectionRow{
			{ZBot: -30, ZTop: -10, OuterRadius: 5, MaxUnity: 0.8},
			{ZBot: -10, ZTop: 5, OuterRadius: 4, MaxUnity: 1.2},
			{ZBot: 5, ZTop: 10, OuterRadius: 3, Undefined: true},
		},
		BallastTop:  -12,
		HasBallast:  true,
		MaxRadius:   5,
		UnityLabels: []string{"axial-local", "external-local"},
		Unities: [][]float64{
			{0.8, 1.2, math.NaN()},
			{0.5, 0.4, 0.1},
		},
	}
}

func TestDrawColumnProfile(t *testing.T) {
	out := DrawColumnProfile(sampleProfile())

	assert.Contains(t, out, "BASE")
	assert.Contains(t, out, "◄─ WL")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "undefined")
	assert.Contains(t, out, "▓")

	// Top section first, waterline between the two upper sections
	top := strings.Index(out, "10.0")
	wl := strings.Index(out, "WL")
	fail := strings.Index(out, "FAIL")
	assert.Less(t, top, wl)
	assert.Less(t, wl, fail)
}

func TestDrawUnityGraph(t *testing.T) {
	out := DrawUnityGraph(sampleProfile())
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "axial-local")

	assert.Empty(t, DrawUnityGraph(ProfileData{}))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"heel 2.1 deg", "GM 4.2 m"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "RESULT")
	assert.Contains(t, lines[4], "GM 4.2 m")
}

func TestExportDiagrams(t *testing.T) {
	dir := t.TempDir()
	unity := filepath.Join(dir, "out", "unity.png")
	profile := filepath.Join(dir, "profile.svg")

	require.NoError(t, ExportUnityProfile(sampleProfile(), unity))
	require.NoError(t, ExportColumnProfile(sampleProfile(), profile))

	for _, f := range []string{unity, profile} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	// Unknown extensions fall back to PNG
	require.NoError(t, ExportUnityProfile(sampleProfile(), filepath.Join(dir, "plain")))
	_, err := os.Stat(filepath.Join(dir, "plain.png"))
	assert.NoError(t, err)
}
