package cars

// Config holds the file-based configuration for the merger.
// These are bootstrap settings loaded from config.yaml; every key has a
// default, so the file is optional.
type Config struct {
	SourceDir    string `yaml:"source_dir"`
	DatabaseFile string `yaml:"dbfile"`
	LogFormat    string `yaml:"log_format"`
	LogLevel     string `yaml:"log_level"`
}
