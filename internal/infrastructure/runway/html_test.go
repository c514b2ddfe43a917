package runway

import (
	"strings"
	"testing"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

func TestGenerateHTML(t *testing.T) {
	scene := &domain.RunwayScene{
		Items: []domain.RunwayItem{{ID: "0", Name: "blue dress", Category: "full_dress_0"}},
		Cover: domain.CoverConfig{Title: "VOGUE", Subtitle: "Collection 2026", Badges: []string{}},
		Scene: scenePresets[DefaultPreset],
	}

	html, err := GenerateHTML(scene)
	if err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}

	t.Run("scene data injected before closing body", func(t *testing.T) {
		idx := strings.Index(html, "const runwaySceneData =")
		if idx < 0 {
			t.Fatal("init script missing")
		}
		if idx > strings.Index(html, "</body>") {
			t.Error("init script injected after </body>")
		}
		if strings.Count(html, "</body>") != 1 {
			t.Errorf("body closed %d times", strings.Count(html, "</body>"))
		}
	})

	t.Run("widget entry points present", func(t *testing.T) {
		for _, fn := range []string{"addItemsToRunway", "updateScene", "updateCover"} {
			if !strings.Contains(html, fn) {
				t.Errorf("widget function %s missing", fn)
			}
		}
	})

	t.Run("item data survives encoding", func(t *testing.T) {
		if !strings.Contains(html, "blue dress") {
			t.Error("item name missing from injected data")
		}
	})

	t.Run("script breaking strings are escaped", func(t *testing.T) {
		hostile := &domain.RunwayScene{
			Items: []domain.RunwayItem{{ID: "0", Name: "</script><script>alert(1)</script>"}},
		}
		out, err := GenerateHTML(hostile)
		if err != nil {
			t.Fatalf("GenerateHTML error: %v", err)
		}
		if strings.Contains(out, "</script><script>alert(1)</script>") {
			t.Error("unescaped markup leaked into the page")
		}
	})
}

func TestGenerateHTMLNilScene(t *testing.T) {
	if _, err := GenerateHTML(nil); err == nil {
		t.Error("expected error for nil scene")
	}
}
