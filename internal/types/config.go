package types

// LogConf controls logging behavior.
type LogConf struct {
	Level string `ini:"level"`
}

// DumpConf controls how bufdump renders buffers.
type DumpConf struct {
	// BytesPerLine is the number of bytes rendered per output line.
	BytesPerLine int `ini:"bytesPerLine"`
	// ShowOffsets prefixes each line with its starting offset.
	ShowOffsets bool `ini:"showOffsets"`
}

// Config is the root of the bufdump.ini behavior file.
type Config struct {
	LogConf  LogConf  `ini:"log"`
	DumpConf DumpConf `ini:"dump"`
}

// Defaults fills in zero-valued fields with usable settings.
func (c *Config) Defaults() {
	if c.LogConf.Level == "" {
		c.LogConf.Level = "info"
	}
	if c.DumpConf.BytesPerLine <= 0 {
		c.DumpConf.BytesPerLine = 16
	}
}
