package runway

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// SceneRequest describes one runway scene to build. Items carry the catalog
// fields plus their result key in Category (e.g. "top_shirt_0"), which the
// image pipeline uses to pick a crop region.
type SceneRequest struct {
	Items         []domain.RunwayItem
	Preset        string
	CoverTitle    string
	CoverSubtitle string
	CoverBadges   []string
}

// Builder assembles complete runway scene packages.
type Builder struct {
	images *ImageProcessor
}

// NewBuilder creates a scene builder around the given image processor
func NewBuilder(images *ImageProcessor) *Builder {
	return &Builder{images: images}
}

// BuildScene processes item images, resolves the preset, and assembles the
// scene package. Image failures degrade to items without a data URI; only an
// unknown preset name is an error.
func (b *Builder) BuildScene(ctx context.Context, req SceneRequest) (*domain.RunwayScene, error) {
	preset := req.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	sceneConfig, err := ScenePreset(preset)
	if err != nil {
		return nil, err
	}

	title := req.CoverTitle
	if title == "" {
		title = "VOGUE"
	}
	subtitle := req.CoverSubtitle
	if subtitle == "" {
		subtitle = "Collection 2026"
	}

	items := make([]domain.RunwayItem, 0, len(req.Items))
	for idx, item := range req.Items {
		item.ID = strconv.Itoa(idx)
		uri, err := b.images.ProcessItemImage(ctx, item)
		if err != nil {
			log.Warn().Err(err).Str("item", item.Name).Msg("runway item image unavailable")
		} else {
			item.ImageDataURI = uri
		}
		items = append(items, item)
	}

	collage, err := b.images.BuildCollage(ctx, req.Items)
	if err != nil {
		log.Warn().Err(err).Msg("look collage unavailable")
		collage = ""
	}

	badges := req.CoverBadges
	if badges == nil {
		badges = []string{}
	}

	return &domain.RunwayScene{
		Items: items,
		Cover: domain.CoverConfig{
			Title:    title,
			Subtitle: subtitle,
			Badges:   badges,
		},
		Scene:              sceneConfig,
		Transitions:        domain.TransitionConfig{Effects: []string{}},
		LookCollageDataURI: collage,
	}, nil
}
