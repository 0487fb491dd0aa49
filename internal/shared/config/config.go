package config

import (
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"tcpresponder/internal/shared/types"
)

const defaultBufferSize = 4096

// LoadIni loads the behaviour configuration file and applies environment
// overrides on top of it.
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	overrideFromEnvInt(&cfg.ServerConf.Port, "PORT")
	overrideFromEnvStr(&cfg.ServerConf.Response, "RESPONSE")
	if cfg.ServerConf.BufferSize <= 0 {
		cfg.ServerConf.BufferSize = defaultBufferSize
	}
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

func overrideFromEnvStr(target *string, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		*target = envValue
	}
}
