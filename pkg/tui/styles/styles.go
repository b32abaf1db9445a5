package styles

import (
	"charm.land/lipgloss/v2"
)

// Color hex values (used throughout the file)
const (
	ColorAccentBlue    = "#7AA2F7" // Soft blue
	ColorMutedBlue     = "#8B95C1" // Dark blue-grey
	ColorBackground    = "#1A1B26" // Dark blue-black
	ColorBackgroundAlt = "#24283B" // Slightly lighter background
	ColorTextPrimary   = "#C0CAF5" // Light blue-white
	ColorTextSecondary = "#9AA5CE" // Medium blue-grey
	ColorSuccessGreen  = "#9ECE6A" // Soft green
	ColorErrorRed      = "#F7768E" // Soft red
	ColorWarningYellow = "#E0AF68" // Soft yellow
	ColorSeparator     = "#414868" // Dark blue-grey
	ColorSelected      = "#364A82" // Dark blue for focused controls
)

var (
	Background    = lipgloss.Color(ColorBackground)
	BackgroundAlt = lipgloss.Color(ColorBackgroundAlt)
	Accent        = lipgloss.Color(ColorAccentBlue)
	TextPrimary   = lipgloss.Color(ColorTextPrimary)
	TextSecondary = lipgloss.Color(ColorTextSecondary)
	TextMuted     = lipgloss.Color(ColorMutedBlue)
	Success       = lipgloss.Color(ColorSuccessGreen)
	Error         = lipgloss.Color(ColorErrorRed)
	Warning       = lipgloss.Color(ColorWarningYellow)
	Separator     = lipgloss.Color(ColorSeparator)
	Selected      = lipgloss.Color(ColorSelected)
)

// Base styles
var (
	BaseStyle  = lipgloss.NewStyle().Foreground(TextPrimary)
	MutedStyle = BaseStyle.Foreground(TextMuted)
	TitleStyle = BaseStyle.Bold(true).Foreground(Accent)

	SectionStyle = BaseStyle.Foreground(TextSecondary).MarginTop(1)

	SeparatorStyle = BaseStyle.Foreground(Separator)
)

// Switch styles
var (
	SwitchOnStyle = BaseStyle.
			Foreground(Background).
			Background(Success).
			Bold(true)

	SwitchOffStyle = BaseStyle.
			Foreground(TextSecondary).
			Background(BackgroundAlt)

	ButtonStyle = BaseStyle.
			Foreground(TextPrimary).
			Background(BackgroundAlt)

	// FocusedStyle wraps whichever control currently holds focus.
	FocusedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent)

	// BlurredStyle keeps unfocused controls aligned with focused ones.
	BlurredStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder())

	LabelStyle = BaseStyle.Foreground(TextSecondary).PaddingLeft(1)
)

// Status styles
var (
	NoticeStyle     = BaseStyle.Foreground(Warning).Bold(true)
	ClickCountStyle = BaseStyle.Foreground(TextSecondary)
	ErrorStyle      = BaseStyle.Foreground(Error).Bold(true)
)

// Notification styles
var (
	NotificationStyle = BaseStyle.
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Success).
				Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle  = BaseStyle.Foreground(Accent).Bold(true)
	HelpDescStyle = MutedStyle
)
