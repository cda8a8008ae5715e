package config

// Config is the runtime configuration, populated by viper from config.yaml,
// environment variables (PORTFOLIO_*) and defaults.
type Config struct {
	Port          int    `mapstructure:"port"`
	LocalesDir    string `mapstructure:"localesDir"`
	ContentDir    string `mapstructure:"contentDir"`
	TemplatesGlob string `mapstructure:"templatesGlob"`
	StaticDir     string `mapstructure:"staticDir"`
	ImagesDir     string `mapstructure:"imagesDir"`
	DatabasePath  string `mapstructure:"databasePath"`
}
