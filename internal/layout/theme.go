package layout

import (
	"errors"
	"strings"
)

// Theme 页面主题配色与字体
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	HeadingFont     string `json:"headingFont"`
	BodyFont        string `json:"bodyFont"`
}

// 编辑器可选字体，主题字体只能取自该列表
var knownFonts = map[string]bool{
	"Allura":             true,
	"Cormorant Garamond": true,
	"Crimson Text":       true,
	"Dancing Script":     true,
	"EB Garamond":        true,
	"Great Vibes":        true,
	"Inter":              true,
	"Lato":               true,
	"Libre Baskerville":  true,
	"Lora":               true,
	"Merriweather":       true,
	"Montserrat":         true,
	"Nunito":             true,
	"Open Sans":          true,
	"Pacifico":           true,
	"Playfair Display":   true,
	"Poppins":            true,
	"Raleway":            true,
	"Roboto":             true,
	"Satisfy":            true,
	"Source Sans Pro":    true,
	"Work Sans":          true,
}

// IsKnownFont 判断字体是否在可用列表内
func IsKnownFont(name string) bool {
	return knownFonts[name]
}

// Validate 校验主题：颜色非空，字体取自可用列表
func (t Theme) Validate() error {
	if strings.TrimSpace(t.PrimaryColor) == "" ||
		strings.TrimSpace(t.SecondaryColor) == "" ||
		strings.TrimSpace(t.BackgroundColor) == "" {
		return errors.New("theme colors must not be empty")
	}
	if !IsKnownFont(t.HeadingFont) || !IsKnownFont(t.BodyFont) {
		return ErrUnknownFont
	}
	return nil
}

// DefaultTheme 返回默认主题
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:    "#C86E52",
		SecondaryColor:  "#8E3D2C",
		BackgroundColor: "#FAF4EF",
		HeadingFont:     "Cormorant Garamond",
		BodyFont:        "Inter",
	}
}

// Merge 用传入主题的非空字段覆盖当前主题
func (t Theme) Merge(patch Theme) Theme {
	merged := t
	if strings.TrimSpace(patch.PrimaryColor) != "" {
		merged.PrimaryColor = patch.PrimaryColor
	}
	if strings.TrimSpace(patch.SecondaryColor) != "" {
		merged.SecondaryColor = patch.SecondaryColor
	}
	if strings.TrimSpace(patch.BackgroundColor) != "" {
		merged.BackgroundColor = patch.BackgroundColor
	}
	if strings.TrimSpace(patch.HeadingFont) != "" {
		merged.HeadingFont = patch.HeadingFont
	}
	if strings.TrimSpace(patch.BodyFont) != "" {
		merged.BodyFont = patch.BodyFont
	}
	return merged
}
