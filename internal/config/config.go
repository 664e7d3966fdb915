package config

import (
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"bytekit/internal/types"
)

// LoadIni loads the bufdump.ini behavior file into cfg and applies
// environment overrides.
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	overrideFromEnvInt(&cfg.DumpConf.BytesPerLine, "BUFDUMP_BYTES_PER_LINE")
	overrideFromEnvString(&cfg.LogConf.Level, "BUFDUMP_LOG_LEVEL")
	return nil
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}

func overrideFromEnvString(target *string, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		*target = envValue
	}
}
