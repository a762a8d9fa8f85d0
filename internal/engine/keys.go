package engine

// Menu focus signals.
const (
	KeyFocusMenu    Key = "menu.focus"       // explicit focus index, -1 when none
	KeySelectedMenu Key = "menu.selected"    // explicit selection index, -1 when none
	KeyItemScales   Key = "menu.item_scales" // per-option visual scale
	KeyLegacyFocus  Key = "menu.legacy_focus"
	KeyMenuItems    Key = "menu.items" // engine's raw option labels for this frame
)

// Settings slider signals.
const (
	KeySliderIndex    Key = "settings.slider_index"    // focused slider row, -1 when none
	KeySpecialFeature Key = "settings.special_feature" // special slider feature code, 0 when none
	KeySliderCategory Key = "settings.slider_category"
)

// Live setting values read by the catalog and slider reader.
const (
	KeyMusicVolume    Key = "audio.music"   // 0..1
	KeySoundVolume    Key = "audio.sound"   // 0..1
	KeyAmbientVolume  Key = "audio.ambient" // 0..1
	KeyZoom           Key = "video.zoom"    // 1..2
	KeyInterfaceScale Key = "video.ui_scale"
	KeyParallax       Key = "video.parallax" // 0..100
	KeyFullscreen     Key = "video.fullscreen"
	KeyResolution     Key = "video.resolution"
	KeyLighting       Key = "video.lighting"
	KeyAutosave       Key = "general.autosave"
	KeyAutopause      Key = "general.autopause"
	KeyMapEnabled     Key = "general.map"
	KeySmartCursor    Key = "general.smart_cursor"
	KeyLanguage       Key = "general.language"
)

// Player/world list and deletion confirmation.
const (
	KeyPlayerNames  Key = "select.players"
	KeyWorldNames   Key = "select.worlds"
	KeyDeleteTarget Key = "delete.target"
)

// World creation text input.
const (
	KeyWorldNameInput Key = "worldgen.name"
	KeyWorldSize      Key = "worldgen.size"
	KeyWorldDifficult Key = "worldgen.difficulty"
)
