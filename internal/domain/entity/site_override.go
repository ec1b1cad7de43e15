package entity

import (
	"encoding/json"
	"fmt"
	"maps"
)

// SiteOverride is the per-origin record in local storage. Either
// typography field may be absent; other keys stored under the same
// record are carried in Extra and preserved on write.
type SiteOverride struct {
	FontScale  *float64
	LineHeight *float64
	Extra      map[string]json.RawMessage
}

// Float returns a pointer to v, for building overrides.
func Float(v float64) *float64 {
	return &v
}

// HasTypography reports whether at least one typography field is present.
func (o *SiteOverride) HasTypography() bool {
	return o != nil && (o.FontScale != nil || o.LineHeight != nil)
}

// IsEmpty reports whether the record holds nothing worth persisting.
func (o *SiteOverride) IsEmpty() bool {
	return o == nil || (!o.HasTypography() && len(o.Extra) == 0)
}

// ClearTypography drops both typography fields, keeping unrelated keys.
func (o *SiteOverride) ClearTypography() {
	o.FontScale = nil
	o.LineHeight = nil
}

// Set stores both fields of s on the record.
func (o *SiteOverride) Set(s TypographySettings) {
	o.FontScale = Float(s.FontScale)
	o.LineHeight = Float(s.LineHeight)
}

func (o SiteOverride) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Extra)+2)
	for k, v := range o.Extra {
		out[k] = v
	}
	if o.FontScale != nil {
		out[string(FieldFontScale)] = *o.FontScale
	}
	if o.LineHeight != nil {
		out[string(FieldLineHeight)] = *o.LineHeight
	}
	return json.Marshal(out)
}

func (o *SiteOverride) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("site override: %w", err)
	}

	*o = SiteOverride{}
	for k, v := range raw {
		switch TypographyField(k) {
		case FieldFontScale:
			f, err := decodeNumber(v)
			if err != nil {
				return fmt.Errorf("site override %s: %w", k, err)
			}
			o.FontScale = f
		case FieldLineHeight:
			f, err := decodeNumber(v)
			if err != nil {
				return fmt.Errorf("site override %s: %w", k, err)
			}
			o.LineHeight = f
		default:
			if o.Extra == nil {
				o.Extra = make(map[string]json.RawMessage)
			}
			o.Extra[k] = v
		}
	}
	return nil
}

// decodeNumber treats JSON null as absent.
func decodeNumber(v json.RawMessage) (*float64, error) {
	var f *float64
	if err := json.Unmarshal(v, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// Clone returns a deep copy.
func (o *SiteOverride) Clone() *SiteOverride {
	if o == nil {
		return nil
	}
	c := &SiteOverride{Extra: maps.Clone(o.Extra)}
	if o.FontScale != nil {
		c.FontScale = Float(*o.FontScale)
	}
	if o.LineHeight != nil {
		c.LineHeight = Float(*o.LineHeight)
	}
	return c
}

// ResolveTypography merges the two layers: each field comes from the
// override when present, otherwise from global. Values are clamped.
func ResolveTypography(global TypographySettings, override *SiteOverride) TypographySettings {
	out := global
	if override != nil {
		if override.FontScale != nil {
			out.FontScale = *override.FontScale
		}
		if override.LineHeight != nil {
			out.LineHeight = *override.LineHeight
		}
	}
	return out.Normalized()
}
