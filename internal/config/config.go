package config

// Tool holds the generator's own settings (paths, mostly). These come from
// viper in cmd/root.go; the site description itself is the JSON document
// loaded by LoadSite.
type Tool struct {
	SitePath        string `mapstructure:"sitePath"`
	TemplatePath    string `mapstructure:"templatePath"`
	TranslationsDir string `mapstructure:"translationsDir"`
	ContentDir      string `mapstructure:"contentDir"`
	AssetsDir       string `mapstructure:"assetsDir"`
	OutputDir       string `mapstructure:"outputDir"`
}
