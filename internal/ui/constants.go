// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the space consumed by a standard panel border, on
	// either axis.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// FooterHeight is the space for separator + status line below a list.
	FooterHeight = 2

	// PanelOverhead is the total vertical overhead of a list panel.
	PanelOverhead = BorderHeight + HeaderHeight + FooterHeight
)
