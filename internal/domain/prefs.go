package domain

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

func ParseTheme(raw string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(raw)))
	switch theme {
	case ThemeSystem, ThemeLight, ThemeDark:
		return theme, nil
	default:
		return "", fmt.Errorf("unsupported theme %q", raw)
	}
}

type MatchMode string

// The service ranks candidates by skill overlap unless told to favour speed.
const (
	MatchModeSkill MatchMode = "skillmatch"
	MatchModeQuick MatchMode = "quickmatch"
)

func ParseMatchMode(raw string) (MatchMode, error) {
	mode := MatchMode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case MatchModeSkill, MatchModeQuick:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported match mode %q", raw)
	}
}
