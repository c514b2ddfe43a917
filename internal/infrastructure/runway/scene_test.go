package runway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

func newTestBuilder(t *testing.T) (*Builder, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(testPNG(t, 80, 160))
	}))
	t.Cleanup(server.Close)
	return NewBuilder(NewImageProcessor(5*time.Second, 64)), server
}

func TestBuildScene(t *testing.T) {
	builder, server := newTestBuilder(t)
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		scene, err := builder.BuildScene(ctx, SceneRequest{
			Items: []domain.RunwayItem{
				{Name: "blue dress", Category: "full_dress_0", ImageURL: server.URL + "/dress.png"},
			},
		})
		if err != nil {
			t.Fatalf("BuildScene error: %v", err)
		}
		if scene.Scene.Preset != DefaultPreset {
			t.Errorf("preset = %q, want default", scene.Scene.Preset)
		}
		if scene.Cover.Title != "VOGUE" || scene.Cover.Subtitle != "Collection 2026" {
			t.Errorf("cover = %+v, want default title and subtitle", scene.Cover)
		}
		if scene.Cover.Badges == nil {
			t.Error("badges should be an empty slice, not nil")
		}
	})

	t.Run("items get sequential ids and data uris", func(t *testing.T) {
		scene, err := builder.BuildScene(ctx, SceneRequest{
			Items: []domain.RunwayItem{
				{Name: "shirt", Category: "top_shirt_0", ImageURL: server.URL + "/shirt.png"},
				{Name: "skirt", Category: "bottom_skirt_0", ImageURL: server.URL + "/skirt.png"},
			},
		})
		if err != nil {
			t.Fatalf("BuildScene error: %v", err)
		}
		if len(scene.Items) != 2 {
			t.Fatalf("got %d items, want 2", len(scene.Items))
		}
		for i, item := range scene.Items {
			if want := []string{"0", "1"}[i]; item.ID != want {
				t.Errorf("item[%d].ID = %q, want %q", i, item.ID, want)
			}
			if !strings.HasPrefix(item.ImageDataURI, "data:image/jpeg;base64,") {
				t.Errorf("item[%d] missing data uri", i)
			}
		}
	})

	t.Run("image failure keeps the item without a data uri", func(t *testing.T) {
		scene, err := builder.BuildScene(ctx, SceneRequest{
			Items: []domain.RunwayItem{{Name: "ghost", Category: "top_shirt_0"}},
		})
		if err != nil {
			t.Fatalf("BuildScene error: %v", err)
		}
		if len(scene.Items) != 1 {
			t.Fatalf("item dropped on image failure")
		}
		if scene.Items[0].ImageDataURI != "" {
			t.Error("failed image produced a data uri")
		}
	})

	t.Run("unknown preset is an error", func(t *testing.T) {
		_, err := builder.BuildScene(ctx, SceneRequest{Preset: "underwater"})
		if !errors.Is(err, domain.ErrPresetUnknown) {
			t.Errorf("err = %v, want ErrPresetUnknown", err)
		}
	})

	t.Run("explicit cover fields pass through", func(t *testing.T) {
		scene, err := builder.BuildScene(ctx, SceneRequest{
			Preset:        "red_carpet",
			CoverTitle:    "ELLE",
			CoverSubtitle: "Resort",
			CoverBadges:   []string{"Exclusive"},
		})
		if err != nil {
			t.Fatalf("BuildScene error: %v", err)
		}
		if scene.Cover.Title != "ELLE" || scene.Cover.Subtitle != "Resort" || len(scene.Cover.Badges) != 1 {
			t.Errorf("cover = %+v", scene.Cover)
		}
		if scene.Scene.Theme != "Red Carpet" {
			t.Errorf("scene theme = %q", scene.Scene.Theme)
		}
	})
}

func TestBuildCollage(t *testing.T) {
	builder, server := newTestBuilder(t)

	uri, err := builder.images.BuildCollage(context.Background(), []domain.RunwayItem{
		{Category: "top_shirt_0", ImageURL: server.URL + "/shirt.png"},
		{Category: "bottom_skirt_0", ImageURL: server.URL + "/skirt.png"},
		{Category: "shoes_boots_0", ImageURL: server.URL + "/boots.png"},
	})
	if err != nil {
		t.Fatalf("BuildCollage error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("collage uri prefix = %q", uri[:min(len(uri), 40)])
	}
}
