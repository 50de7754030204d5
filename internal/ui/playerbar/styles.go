package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavesq/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func progressBarFilled() lipgloss.Style {
	return styles.T().S().Playing
}

func progressBarEmpty() lipgloss.Style {
	return styles.T().S().Subtle
}

func progressTimeStyle() lipgloss.Style {
	return styles.T().S().Muted
}
