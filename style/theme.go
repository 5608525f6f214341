// ABOUTME: Named style palettes for applications and form-like components
// ABOUTME: Palettes load from YAML so apps can retheme without recompiling

package style

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme is a set of styles applied to interactive form components. Fields
// left as zero styles render their component unstyled.
type Theme struct {
	Title          Style
	Cursor         Style
	Prompt         Style
	Placeholder    Style
	CursorBlink    bool
	SelectCursor   Style
	SelectedOption Style
	FocusedButton  Style
	BlurredButton  Style
	FocusedBase    Style
	BlurredBase    Style
}

// AppTheme is an app-level palette: named styles for titles, sections,
// panel borders, overlays, and list items. Apps destructure it into their
// own style variables so switching themes is a one-line change.
type AppTheme struct {
	Form Theme

	Title    Style
	Subtitle Style
	Help     Style
	Error    Style

	SectionFocused Style
	SectionBlurred Style
	FieldLabel     Style

	BorderActive   Style
	BorderInactive Style

	Overlay Style

	ItemSelected    Style
	ItemNormal      Style
	ItemDescription Style
}

// CharmTheme returns the dark-mode form palette.
func CharmTheme() Theme {
	return Theme{
		Title:          New().Bold(true).Foreground("#7571F9"),
		Cursor:         New().Foreground("#02BF87"),
		Prompt:         New().Foreground("#F780E2"),
		Placeholder:    New().Foreground("#444444"),
		CursorBlink:    true,
		SelectCursor:   New().Foreground("#F780E2"),
		SelectedOption: New().Foreground("#02BF87"),
		FocusedButton:  New().Foreground("#FFFDF5").Background("#F780E2"),
		BlurredButton:  New().Foreground("#D0D0D0").Background("#303030"),
		FocusedBase:    New().Border(ThickBorder, false, false, false, true).BorderForeground("#444444").PaddingLeft(1),
		BlurredBase:    New().Border(HiddenBorder, false, false, false, true).PaddingLeft(1),
	}
}

// CharmAppTheme returns the default dark-mode application palette.
func CharmAppTheme() AppTheme {
	return AppTheme{
		Form: CharmTheme(),

		Title:    New().Bold(true).Foreground("#FAFAFA").Background("#7D56F4").Padding(0, 1),
		Subtitle: New().Foreground("#AFAFAF"),
		Help:     New().Foreground("#626262"),
		Error:    New().Bold(true).Foreground("#FF0000"),

		SectionFocused: New().Bold(true).Foreground("#1A1A2E").Background("#56D6D6"),
		SectionBlurred: New().Bold(true).Foreground("#FAFAFA").Background("#555555"),
		FieldLabel:     New().Bold(true).Foreground("#7D56F4"),

		BorderActive:   New().Border(RoundedBorder).BorderForeground("#7D56F4"),
		BorderInactive: New().Border(RoundedBorder).BorderForeground("#555555"),

		Overlay: New().Border(DoubleBorder).BorderForeground("#7D56F4").Background("#1A1A2E").Foreground("#FAFAFA").Padding(1, 2),

		ItemSelected:    New().Bold(true).Foreground("#FAFAFA").Background("#7D56F4").Padding(0, 1),
		ItemNormal:      New().Foreground("#FAFAFA").Padding(0, 1),
		ItemDescription: New().Foreground("#BBBBBB"),
	}
}

// Palette is the YAML-loadable color set for an AppTheme. Every field is
// optional; empty fields keep the default palette's color.
type Palette struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`
	Text      string `yaml:"text"`
	Muted     string `yaml:"muted"`
	ErrorC    string `yaml:"error"`
	Surface   string `yaml:"surface"`
}

// ParseAppPalette builds an AppTheme from YAML palette data, starting from
// the default palette and substituting any colors the data provides.
func ParseAppPalette(data []byte) (AppTheme, error) {
	p := Palette{
		Primary:   "#7D56F4",
		Secondary: "#56D6D6",
		Accent:    "#F780E2",
		Text:      "#FAFAFA",
		Muted:     "#626262",
		ErrorC:    "#FF0000",
		Surface:   "#1A1A2E",
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return AppTheme{}, fmt.Errorf("parse palette: %w", err)
	}

	t := AppTheme{
		Form: CharmTheme(),

		Title:    New().Bold(true).Foreground(p.Text).Background(p.Primary).Padding(0, 1),
		Subtitle: New().Foreground("#AFAFAF"),
		Help:     New().Foreground(p.Muted),
		Error:    New().Bold(true).Foreground(p.ErrorC),

		SectionFocused: New().Bold(true).Foreground(p.Surface).Background(p.Secondary),
		SectionBlurred: New().Bold(true).Foreground(p.Text).Background("#555555"),
		FieldLabel:     New().Bold(true).Foreground(p.Primary),

		BorderActive:   New().Border(RoundedBorder).BorderForeground(p.Primary),
		BorderInactive: New().Border(RoundedBorder).BorderForeground("#555555"),

		Overlay: New().Border(DoubleBorder).BorderForeground(p.Primary).Background(p.Surface).Foreground(p.Text).Padding(1, 2),

		ItemSelected:    New().Bold(true).Foreground(p.Text).Background(p.Primary).Padding(0, 1),
		ItemNormal:      New().Foreground(p.Text).Padding(0, 1),
		ItemDescription: New().Foreground("#BBBBBB"),
	}
	for _, st := range []Style{t.Title, t.Help, t.Error, t.SectionFocused, t.SectionBlurred, t.FieldLabel, t.BorderActive, t.Overlay, t.ItemSelected, t.ItemNormal} {
		if err := st.Err(); err != nil {
			return AppTheme{}, err
		}
	}
	return t, nil
}
