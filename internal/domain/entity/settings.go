package entity

// SettingsSource records which layer the effective values came from.
type SettingsSource string

const (
	SourceGlobal   SettingsSource = "global"
	SourceSite     SettingsSource = "site"
	SourceFallback SettingsSource = "fallback"
)

// EffectiveSettings is the resolved typography for one origin together with
// the layers it was derived from. Resolver calls take and return it instead
// of keeping the current values in shared state.
type EffectiveSettings struct {
	Origin   string             `json:"origin,omitempty" yaml:"origin,omitempty"`
	Settings TypographySettings `json:"settings" yaml:"settings"`
	Global   TypographySettings `json:"global" yaml:"global"`
	Override *SiteOverride      `json:"-" yaml:"-"`
	Source   SettingsSource     `json:"source" yaml:"source"`
}

// NewEffectiveSettings resolves global and override for origin.
func NewEffectiveSettings(origin string, global TypographySettings, override *SiteOverride) EffectiveSettings {
	src := SourceGlobal
	if override.HasTypography() {
		src = SourceSite
	}
	return EffectiveSettings{
		Origin:   origin,
		Settings: ResolveTypography(global, override),
		Global:   global.Normalized(),
		Override: override,
		Source:   src,
	}
}

// FallbackSettings is used when storage cannot be read.
func FallbackSettings(origin string) EffectiveSettings {
	d := DefaultTypography()
	return EffectiveSettings{Origin: origin, Settings: d, Global: d, Source: SourceFallback}
}

// IsGlobal reports whether adjustments target the synced global layer.
func (e EffectiveSettings) IsGlobal() bool {
	return e.Origin == ""
}

// Adjustment is the outcome of a single step on one field.
type Adjustment struct {
	Settings EffectiveSettings
	Field    TypographyField
	Value    float64
	Changed  bool
}
