package queuepanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songlist/internal/ui/styles"
)

const (
	playingSymbol = "\u25B6" // ▶
)

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

func songStyle() lipgloss.Style {
	return styles.T().S().Base
}

func playingStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func footerStyle(kind statusKind) lipgloss.Style {
	s := styles.T().S()
	switch kind {
	case statusSuccess:
		return s.Success
	case statusWarning:
		return s.Warning
	default:
		return s.Muted
	}
}
