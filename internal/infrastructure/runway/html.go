package runway

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

//go:embed runway_widget.html
var widgetTemplate string

// initScriptFormat injects the scene package and wires the widget's entry
// points once the page has loaded.
const initScriptFormat = `
<script>
const runwaySceneData = %s;

window.addEventListener('load', function () {
  if (typeof addItemsToRunway === 'function' && runwaySceneData.items) {
    addItemsToRunway(runwaySceneData.items);
  }
  if (typeof updateScene === 'function' && runwaySceneData.scene) {
    updateScene(runwaySceneData.scene);
  }
  if (typeof updateCover === 'function' && runwaySceneData.cover) {
    updateCover(
      runwaySceneData.cover.title,
      runwaySceneData.cover.subtitle,
      runwaySceneData.cover.badges
    );
  }
});
</script>
`

// GenerateHTML returns the widget page with the scene data injected as an
// init script before the closing body tag.
func GenerateHTML(scene *domain.RunwayScene) (string, error) {
	if scene == nil {
		return "", fmt.Errorf("%w: nil scene", domain.ErrInvalidRequest)
	}

	// The default encoder escapes <, > and & inside strings, which keeps
	// the JSON safe to embed in a script element.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(scene); err != nil {
		return "", fmt.Errorf("encode scene: %w", err)
	}

	script := fmt.Sprintf(initScriptFormat, strings.TrimSpace(buf.String()))
	return strings.Replace(widgetTemplate, "</body>", script+"</body>", 1), nil
}
