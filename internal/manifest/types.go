package manifest

// Preset is a reusable set of `create` options loaded from a file.
// Zero values mean "not set"; command-line flags that were explicitly
// given take precedence over preset values.
type Preset struct {
	Backend      bool   `yaml:"backend" json:"backend"`
	Frontend     bool   `yaml:"frontend" json:"frontend"`
	FrontendType string `yaml:"frontend_type,omitempty" json:"frontend_type,omitempty"`
	EnableProxy  bool   `yaml:"enable_proxy" json:"enable_proxy"`
	Version      string `yaml:"version,omitempty" json:"version,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	Strict       bool   `yaml:"strict" json:"strict"`
}

// PackageJSON is the subset of an Electron package.json that projtools
// reads back after generation.
type PackageJSON struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Main    string            `json:"main"`
	Scripts map[string]string `json:"scripts"`
	Author  struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"author"`
}
