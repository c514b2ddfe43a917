package domain

// RunwayItem is a single item displayed on the runway.
type RunwayItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url,omitempty"`
	ImageDataURI string  `json:"image_data_uri,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Brand        string  `json:"brand,omitempty"`
	StoreID      string  `json:"store_id,omitempty"`
	GoodID       string  `json:"good_id,omitempty"`
	LookLabel    string  `json:"look_label,omitempty"`
}

// CoverConfig is the magazine-style cover overlay configuration.
type CoverConfig struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Badges   []string `json:"badges"`
}

// SceneConfig is the 3D scene configuration consumed by the runway widget.
type SceneConfig struct {
	Preset             string  `json:"preset"`
	FogDensity         float64 `json:"fog_density"`
	FogColor           string  `json:"fog_color"`
	BackgroundColor    string  `json:"background_color"`
	SpotlightIntensity float64 `json:"spotlight_intensity"`
	SpotlightColor     string  `json:"spotlight_color"`
	ParticleCount      int     `json:"particle_count"`
	ParticleSpeed      float64 `json:"particle_speed"`
	CameraDistance     float64 `json:"camera_distance"`
	CameraHeight       float64 `json:"camera_height"`
	Theme              string  `json:"theme"`
	Lighting           string  `json:"lighting"`
	Atmosphere         string  `json:"atmosphere"`
}

// TransitionConfig lists animation transition effects.
type TransitionConfig struct {
	Effects []string `json:"effects"`
}

// DirectorCommand is the complete structured director command from the LLM.
type DirectorCommand struct {
	Scene       SceneConfig      `json:"scene"`
	Cover       CoverConfig      `json:"cover"`
	Transitions TransitionConfig `json:"transitions"`
}

// RunwayScene is the complete runway scene package handed to the widget.
type RunwayScene struct {
	Items              []RunwayItem     `json:"items"`
	Cover              CoverConfig      `json:"cover"`
	Scene              SceneConfig      `json:"scene"`
	Transitions        TransitionConfig `json:"transitions"`
	LookCollageDataURI string           `json:"look_collage_data_uri,omitempty"`
}
