package config

type yamlConfig struct {
	SubPath       *int          `yaml:"subpath"`
	Viewport      *yamlViewport `yaml:"viewport"`
	DistanceScale *float64      `yaml:"distance_scale"`
	Workers       *int          `yaml:"workers"`
	Strict        *bool         `yaml:"strict"`
	Log           yamlLog       `yaml:"log"`
}

type yamlViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type yamlLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
