package theme

import (
	"os"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconSuccess   = "󰄬" // md-check (U+F012C)
	nerdIconError     = "" // cod-error (U+EA87)
	nerdIconWarning   = "" // fa-warning (U+F071)
	nerdIconInfo      = "󰋼" // md-information (U+F02FC)
	nerdIconArrow     = "󰁔" // md-arrow_right (U+F0054)
	nerdIconChecked   = "󰄲" // md-checkbox_marked (U+F0132)
	nerdIconUnchecked = "󰄱" // md-checkbox_blank_outline (U+F0131)
	nerdIconFilter    = "󱣬" // md-filter_check (U+F18EC)
	nerdIconSelectAll = "󰒆" // md-select_all (U+F0486)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconSuccess   = "✓"
	asciiIconError     = "✗"
	asciiIconWarning   = "⚠"
	asciiIconInfo      = "i"
	asciiIconArrow     = ">"
	asciiIconChecked   = "[x]"
	asciiIconUnchecked = "[ ]"
	asciiIconFilter    = "/"
	asciiIconSelectAll = "*"
)

// Public Icon Variables
var (
	IconSuccess   string
	IconError     string
	IconWarning   string
	IconInfo      string
	IconArrow     string
	IconChecked   string
	IconUnchecked string
	IconFilter    string
	IconSelectAll string
)

// init picks the icon set: VIEWPICK_ICONS first, then `tui.icons` in config.
func init() {
	mode := os.Getenv("VIEWPICK_ICONS")
	if mode == "" {
		mode = loadTUIConfig().Icons
	}
	UseIconSet(mode)
}

// UseIconSet switches between the "ascii" and the Nerd Font ("nerd") icon sets.
func UseIconSet(mode string) {
	if mode == "ascii" {
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconArrow = asciiIconArrow
		IconChecked = asciiIconChecked
		IconUnchecked = asciiIconUnchecked
		IconFilter = asciiIconFilter
		IconSelectAll = asciiIconSelectAll
		return
	}

	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconInfo = nerdIconInfo
	IconArrow = nerdIconArrow
	IconChecked = nerdIconChecked
	IconUnchecked = nerdIconUnchecked
	IconFilter = nerdIconFilter
	IconSelectAll = nerdIconSelectAll
}
