// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/domain/origin"
	"github.com/bnema/includs/internal/logging"
)

// ManageTypographyUseCase resolves, adjusts and resets typography settings
// across the synced global layer and the local per-site overrides.
//
// Storage failures never surface to callers: reads fall back to defaults,
// failed writes are logged and the in-memory result is still returned.
type ManageTypographyUseCase struct {
	store     port.ConfigStore
	overrides port.Cache[string, *entity.SiteOverride]
	applier   *ApplyTypographyUseCase
}

// NewManageTypographyUseCase creates the resolver. overrides and applier
// are optional.
func NewManageTypographyUseCase(
	store port.ConfigStore,
	overrides port.Cache[string, *entity.SiteOverride],
	applier *ApplyTypographyUseCase,
) *ManageTypographyUseCase {
	return &ManageTypographyUseCase{
		store:     store,
		overrides: overrides,
		applier:   applier,
	}
}

// Resolve returns the effective settings for siteOrigin. An empty origin
// resolves the global layer only.
func (uc *ManageTypographyUseCase) Resolve(ctx context.Context, siteOrigin string) entity.EffectiveSettings {
	log := logging.FromContext(ctx)

	var (
		global   entity.TypographySettings
		override *entity.SiteOverride
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		global, err = uc.readGlobal(gctx)
		return err
	})
	if siteOrigin != "" {
		g.Go(func() error {
			var err error
			override, err = uc.cachedOverride(gctx, siteOrigin)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Str("origin", siteOrigin).Msg("failed to read typography settings, using defaults")
		return entity.FallbackSettings(siteOrigin)
	}

	eff := entity.NewEffectiveSettings(siteOrigin, global, override)
	log.Debug().
		Str("origin", siteOrigin).
		Str("source", string(eff.Source)).
		Float64("font_scale", eff.Settings.FontScale).
		Float64("line_height", eff.Settings.LineHeight).
		Msg("resolved typography")
	return eff
}

// Adjust moves field one step in dir. At a bound nothing is written and
// Changed is false. Otherwise both fields are persisted, to the site record
// for current.Origin or to the global layer when the origin is empty, and
// the stylesheet is reapplied.
func (uc *ManageTypographyUseCase) Adjust(
	ctx context.Context,
	current entity.EffectiveSettings,
	field entity.TypographyField,
	dir entity.Direction,
) entity.Adjustment {
	log := logging.FromContext(ctx)

	from := current.Settings.Get(field)
	to := entity.BoundsFor(field).Next(from, dir)
	if to == from {
		log.Debug().
			Str("field", string(field)).
			Str("direction", dir.String()).
			Float64("value", from).
			Msg("typography already at bound")
		return entity.Adjustment{Settings: current, Field: field, Value: from}
	}

	next := current
	next.Settings = current.Settings.With(field, to)

	if current.IsGlobal() {
		next.Global = next.Settings
		next.Source = entity.SourceGlobal
		if err := uc.writeGlobal(ctx, next.Settings); err != nil {
			log.Error().Err(err).Msg("failed to persist global typography")
		}
	} else {
		next.Override = uc.persistSite(ctx, current.Origin, current.Override, next.Settings)
		next.Source = entity.SourceSite
	}

	log.Debug().
		Str("origin", current.Origin).
		Str("field", string(field)).
		Float64("from", from).
		Float64("to", to).
		Msg("typography adjusted")

	uc.reapply(ctx, next.Settings)
	return entity.Adjustment{Settings: next, Field: field, Value: to, Changed: true}
}

// persistSite merges s into the stored record for siteOrigin and returns
// the record as written.
func (uc *ManageTypographyUseCase) persistSite(
	ctx context.Context,
	siteOrigin string,
	known *entity.SiteOverride,
	s entity.TypographySettings,
) *entity.SiteOverride {
	log := logging.FromContext(ctx)

	record, err := uc.readOverride(ctx, siteOrigin)
	if err != nil {
		log.Warn().Err(err).Str("origin", siteOrigin).Msg("failed to read site record before write")
		record = known.Clone()
	}
	if record == nil {
		record = &entity.SiteOverride{}
	}
	record.Set(s)

	if err := uc.store.Set(ctx, port.ScopeLocal, map[string]any{origin.SiteKey(siteOrigin): record}); err != nil {
		log.Error().Err(err).Str("origin", siteOrigin).Msg("failed to persist site typography")
	}
	uc.cacheOverride(siteOrigin, record)
	return record
}

// ResetToDefaults drops the typography fields from the site record,
// deleting it when nothing else is stored there, and reapplies the global
// settings. With an empty origin the global layer is reset instead.
func (uc *ManageTypographyUseCase) ResetToDefaults(ctx context.Context, siteOrigin string) entity.EffectiveSettings {
	log := logging.FromContext(ctx)

	if siteOrigin == "" {
		d := entity.DefaultTypography()
		if err := uc.writeGlobal(ctx, d); err != nil {
			log.Error().Err(err).Msg("failed to reset global typography")
		}
		uc.reapply(ctx, d)
		return entity.NewEffectiveSettings("", d, nil)
	}

	record, err := uc.readOverride(ctx, siteOrigin)
	if err != nil {
		log.Warn().Err(err).Str("origin", siteOrigin).Msg("failed to read site record, removing it")
		record = nil
	}

	key := origin.SiteKey(siteOrigin)
	var remaining *entity.SiteOverride
	if record != nil {
		record.ClearTypography()
		if !record.IsEmpty() {
			remaining = record
		}
	}

	if remaining == nil {
		err = uc.store.Remove(ctx, port.ScopeLocal, key)
	} else {
		err = uc.store.Set(ctx, port.ScopeLocal, map[string]any{key: remaining})
	}
	if err != nil {
		log.Error().Err(err).Str("origin", siteOrigin).Msg("failed to reset site typography")
	}
	uc.cacheOverride(siteOrigin, remaining)

	eff := uc.Resolve(ctx, siteOrigin)
	uc.reapply(ctx, eff.Settings)

	log.Info().Str("origin", siteOrigin).Msg("site typography reset")
	return eff
}

// SaveAsGlobal stores s as the global layer.
func (uc *ManageTypographyUseCase) SaveAsGlobal(ctx context.Context, s entity.TypographySettings) error {
	s = s.Normalized()
	if err := uc.writeGlobal(ctx, s); err != nil {
		return fmt.Errorf("failed to save global typography: %w", err)
	}
	logging.FromContext(ctx).Info().
		Float64("font_scale", s.FontScale).
		Float64("line_height", s.LineHeight).
		Msg("global typography saved")
	return nil
}

// SiteTypography is one stored per-site override.
type SiteTypography struct {
	Origin     string                    `json:"origin" yaml:"origin"`
	FontScale  *float64                  `json:"fontScale,omitempty" yaml:"fontScale,omitempty"`
	LineHeight *float64                  `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	Effective  entity.TypographySettings `json:"effective" yaml:"effective"`
}

// ListOverrides returns every origin with stored typography, sorted by origin.
func (uc *ManageTypographyUseCase) ListOverrides(ctx context.Context) ([]SiteTypography, error) {
	log := logging.FromContext(ctx)

	records, err := uc.store.List(ctx, port.ScopeLocal, origin.SiteKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list site overrides: %w", err)
	}

	global, err := uc.readGlobal(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read global typography, using defaults")
		global = entity.DefaultTypography()
	}

	out := make([]SiteTypography, 0, len(records))
	for key, raw := range records {
		o, ok := origin.FromSiteKey(key)
		if !ok {
			continue
		}
		var rec entity.SiteOverride
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("skipping unreadable site record")
			continue
		}
		if !rec.HasTypography() {
			continue
		}
		out = append(out, SiteTypography{
			Origin:     o,
			FontScale:  rec.FontScale,
			LineHeight: rec.LineHeight,
			Effective:  entity.ResolveTypography(global, &rec),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Origin < out[j].Origin })
	log.Debug().Int("count", len(out)).Msg("listed site overrides")
	return out, nil
}

// InvalidateCache drops cached overrides after an external store change.
func (uc *ManageTypographyUseCase) InvalidateCache(siteOrigins ...string) {
	if uc.overrides == nil {
		return
	}
	for _, o := range siteOrigins {
		uc.overrides.Remove(o)
	}
}

func (uc *ManageTypographyUseCase) reapply(ctx context.Context, s entity.TypographySettings) {
	if uc.applier == nil {
		return
	}
	if _, _, err := uc.applier.ApplyToPage(ctx, s); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reapply typography")
	}
}

func (uc *ManageTypographyUseCase) readGlobal(ctx context.Context) (entity.TypographySettings, error) {
	values, err := uc.store.Get(ctx, port.ScopeSynced, KeyFontScale, KeyLineHeight)
	if err != nil {
		return entity.TypographySettings{}, fmt.Errorf("read global typography: %w", err)
	}

	s := entity.DefaultTypography()
	if _, err := decodeKey(values, KeyFontScale, &s.FontScale); err != nil {
		return entity.TypographySettings{}, err
	}
	if _, err := decodeKey(values, KeyLineHeight, &s.LineHeight); err != nil {
		return entity.TypographySettings{}, err
	}
	return s.Normalized(), nil
}

func (uc *ManageTypographyUseCase) writeGlobal(ctx context.Context, s entity.TypographySettings) error {
	return uc.store.Set(ctx, port.ScopeSynced, map[string]any{
		KeyFontScale:  s.FontScale,
		KeyLineHeight: s.LineHeight,
	})
}

func (uc *ManageTypographyUseCase) readOverride(ctx context.Context, siteOrigin string) (*entity.SiteOverride, error) {
	key := origin.SiteKey(siteOrigin)
	values, err := uc.store.Get(ctx, port.ScopeLocal, key)
	if err != nil {
		return nil, fmt.Errorf("read site override: %w", err)
	}

	var rec *entity.SiteOverride
	if _, err := decodeKey(values, key, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (uc *ManageTypographyUseCase) cachedOverride(ctx context.Context, siteOrigin string) (*entity.SiteOverride, error) {
	if uc.overrides != nil {
		if rec, ok := uc.overrides.Get(siteOrigin); ok {
			return rec.Clone(), nil
		}
	}
	rec, err := uc.readOverride(ctx, siteOrigin)
	if err != nil {
		return nil, err
	}
	uc.cacheOverride(siteOrigin, rec)
	return rec, nil
}

func (uc *ManageTypographyUseCase) cacheOverride(siteOrigin string, rec *entity.SiteOverride) {
	if uc.overrides != nil {
		uc.overrides.Set(siteOrigin, rec.Clone())
	}
}
