package menu

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-narrator/internal/engine"
)

func static(label string) OptionResolver {
	return func(engine.Reader) string { return label }
}

func toggle(label string, key engine.Key) OptionResolver {
	return func(r engine.Reader) string {
		on, ok := engine.Bool(r, key)
		if !ok {
			return label
		}
		if on {
			return label + ": on"
		}
		return label + ": off"
	}
}

func choice(label string, key engine.Key) OptionResolver {
	return func(r engine.Reader) string {
		v, ok := engine.Text(r, key)
		if !ok || v == "" {
			return label
		}
		return label + ": " + v
	}
}

func sliderOption(kind SliderKind) OptionResolver {
	return func(r engine.Reader) string {
		pct, ok := ReadPercent(r, kind)
		if !ok {
			return kind.Label()
		}
		return fmt.Sprintf("%s %d percent", kind.Label(), pct)
	}
}

func resolution(r engine.Reader) string {
	v, ok := engine.Text(r, engine.KeyResolution)
	if !ok || v == "" {
		return "Resolution"
	}
	return "Resolution: " + strings.ReplaceAll(v, "x", " by ")
}

func deletePrompt(noun string) OptionResolver {
	return func(r engine.Reader) string {
		target, ok := engine.Text(r, engine.KeyDeleteTarget)
		if !ok || target == "" {
			return "Delete " + noun + "?"
		}
		return "Delete " + noun + " " + target + "?"
	}
}

func worldName(r engine.Reader) string {
	name, ok := engine.Text(r, engine.KeyWorldNameInput)
	if !ok || strings.TrimSpace(name) == "" {
		return "World name, blank"
	}
	return "World name: " + name
}

func defaultTables() map[Mode][]OptionResolver {
	return map[Mode][]OptionResolver{
		ModeTitle: {
			static("Single Player"),
			static("Multiplayer"),
			static("Achievements"),
			static("Settings"),
			static("Credits"),
			static("Exit"),
		},
		ModeSettings: {
			static("General"),
			static("Interface"),
			static("Video"),
			static("Audio"),
			static("Controls"),
			choice("Language", engine.KeyLanguage),
			static("Back"),
		},
		ModeAudioSettings: {
			sliderOption(SliderMusic),
			sliderOption(SliderSound),
			sliderOption(SliderAmbient),
			static("Back"),
		},
		ModeVideoSettings: {
			toggle("Fullscreen", engine.KeyFullscreen),
			resolution,
			sliderOption(SliderZoom),
			sliderOption(SliderInterfaceScale),
			sliderOption(SliderParallax),
			choice("Lighting", engine.KeyLighting),
			static("Back"),
		},
		ModeGeneralSettings: {
			toggle("Autosave", engine.KeyAutosave),
			toggle("Autopause", engine.KeyAutopause),
			toggle("Map", engine.KeyMapEnabled),
			toggle("Smart cursor", engine.KeySmartCursor),
			static("Back"),
		},
		ModeDeletePlayer: {
			deletePrompt("player"),
			static("Delete"),
			static("Cancel"),
		},
		ModeDeleteWorld: {
			deletePrompt("world"),
			static("Delete"),
			static("Cancel"),
		},
		ModeWorldCreation: {
			worldName,
			choice("Size", engine.KeyWorldSize),
			choice("Difficulty", engine.KeyWorldDifficult),
			static("Create"),
			static("Back"),
		},
	}
}

func listResolver(key engine.Key, newLabel string) CustomResolver {
	return func(r engine.Reader, index int) (string, bool) {
		names, ok := engine.Strings(r, key)
		if !ok {
			return "", false
		}
		switch {
		case index < len(names):
			return names[index], true
		case index == len(names):
			return newLabel, true
		case index == len(names)+1:
			return "Back", true
		}
		return "", false
	}
}

func defaultCustom() map[Mode]CustomResolver {
	return map[Mode]CustomResolver{
		ModePlayerSelect: listResolver(engine.KeyPlayerNames, "New player"),
		ModeWorldSelect:  listResolver(engine.KeyWorldNames, "New world"),
	}
}
