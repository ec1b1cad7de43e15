// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "\uf0ac" // browser/web origin
	IconArrow   = "\uf061" // arrow right
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCursor  = "\uf054" // chevron-right

	// Typography
	IconFont       = "\uf031" // font
	IconLineHeight = "\uf034" // text-height
	IconReset      = "\uf0e2" // rotate-left
	IconPlus       = "\uf067" // plus
	IconMinus      = "\uf068" // minus

	// Gateway
	IconKey       = "\uf084" // key
	IconRobot     = "\uf544" // robot
	IconVoice     = "\uf130" // microphone
	IconClipboard = "\uf0ea" // clipboard
	IconSliders   = "\uf1de" // sliders
)
