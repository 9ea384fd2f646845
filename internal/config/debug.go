package config

import "os"

func IsDebug() bool {
	return os.Getenv("DOCBOT_DEBUG") == "1"
}
