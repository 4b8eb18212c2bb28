package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconActive     = "●" // Entry is currently on the PATH
	IconInactive   = "○"
	IconDuplicate  = "≈" // Almost equal (duplicate)
	IconMissing    = "✗" // Thin X (missing)
	IconOK         = " " // Space (OK - no icon to reduce noise)
	IconSelected   = "☑"
	IconUnselected = "☐"
	IconFirst      = "¹" // Highest priority entry
)
