package runway

import (
	"fmt"
	"sort"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// DefaultPreset is used whenever no preset or an unknown preset is requested.
const DefaultPreset = "minimal"

// scenePresets holds the built-in scene configurations.
var scenePresets = map[string]domain.SceneConfig{
	"paris_runway": {
		Preset:             "paris_runway",
		FogDensity:         0.015,
		FogColor:           "#1a1a1a",
		BackgroundColor:    "#2a2a2a",
		SpotlightIntensity: 0.8,
		SpotlightColor:     "#fff5e6",
		ParticleCount:      300,
		ParticleSpeed:      0.0005,
		CameraDistance:     18,
		CameraHeight:       6,
		Theme:              "Paris Runway",
		Lighting:           "Warm Soft",
		Atmosphere:         "Elegant Minimal",
	},
	"cyberpunk": {
		Preset:             "cyberpunk",
		FogDensity:         0.04,
		FogColor:           "#0a0a1a",
		BackgroundColor:    "#050510",
		SpotlightIntensity: 1.5,
		SpotlightColor:     "#7cffd1",
		ParticleCount:      800,
		ParticleSpeed:      0.003,
		CameraDistance:     12,
		CameraHeight:       3,
		Theme:              "Cyberpunk Tokyo",
		Lighting:           "Neon",
		Atmosphere:         "Futuristic Rain",
	},
	"editorial_90s": {
		Preset:             "editorial_90s",
		FogDensity:         0.005,
		FogColor:           "#ffffff",
		BackgroundColor:    "#ffffff",
		SpotlightIntensity: 1.2,
		SpotlightColor:     "#ffffff",
		ParticleCount:      200,
		ParticleSpeed:      0.0002,
		CameraDistance:     20,
		CameraHeight:       8,
		Theme:              "Editorial 90s",
		Lighting:           "High Contrast",
		Atmosphere:         "Clean Minimal",
	},
	"red_carpet": {
		Preset:             "red_carpet",
		FogDensity:         0.01,
		FogColor:           "#1a0000",
		BackgroundColor:    "#0a0000",
		SpotlightIntensity: 2.0,
		SpotlightColor:     "#ffffff",
		ParticleCount:      400,
		ParticleSpeed:      0.001,
		CameraDistance:     14,
		CameraHeight:       4,
		Theme:              "Red Carpet",
		Lighting:           "Dramatic Spots",
		Atmosphere:         "Glamorous",
	},
	DefaultPreset: {
		Preset:             DefaultPreset,
		FogDensity:         0.02,
		FogColor:           "#000000",
		BackgroundColor:    "#111111",
		SpotlightIntensity: 1.0,
		SpotlightColor:     "#ffffff",
		ParticleCount:      500,
		ParticleSpeed:      0.001,
		CameraDistance:     15,
		CameraHeight:       5,
		Theme:              "Minimal",
		Lighting:           "Soft",
		Atmosphere:         "Clean",
	},
}

// Presets returns the available preset names, sorted for stable output.
func Presets() []string {
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScenePreset returns the scene configuration for the named preset.
func ScenePreset(name string) (domain.SceneConfig, error) {
	cfg, ok := scenePresets[name]
	if !ok {
		return domain.SceneConfig{}, fmt.Errorf("%w: %s", domain.ErrPresetUnknown, name)
	}
	return cfg, nil
}

// PresetDescription returns a short human-readable preset summary, or ""
// for unknown presets.
func PresetDescription(name string) string {
	cfg, ok := scenePresets[name]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s - %s lighting, %s atmosphere", cfg.Theme, cfg.Lighting, cfg.Atmosphere)
}
