package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "a", "Playlist", "Barış Manço", "★★★"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got := Gradient(text, T().Warning, T().Primary)
			assert.Equal(t, text, ansi.Strip(got))
		})
	}
}

func TestBlendColors_Endpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	colors := blendColors(3, from, to)

	assert.Len(t, colors, 3)
	assert.Equal(t, "#000000", strings.ToLower(string(colors[0])))
	assert.Equal(t, "#ffffff", strings.ToLower(string(colors[2])))
}

func TestToColorful_Fallback(t *testing.T) {
	c := toColorful(lipgloss.Color("240"))

	r, g, b := c.RGB255()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestRankingStars(t *testing.T) {
	tests := []struct {
		ranking  int
		expected string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ansi.Strip(RankingStars(tt.ranking, 5)))
		})
	}
}
