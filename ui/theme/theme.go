package theme

// Centralized theming for the recorder UI. Provides palette constants and
// InitStyles to activate a base theme and configure the window background.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg      = "#f7f9fb" // app background
	ColorSurface = "#ffffff" // panels, labels
	ColorBorder  = "#d0d7de"
	ColorDanger  = "#dc2626" // stop button
	ColorAccent  = "#10b981" // state label
	ColorText    = "#1e293b"
)

// InitStyles activates the base theme and applies the window background.
// Call once after the root window exists, before building views.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))
}
