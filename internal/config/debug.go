package config

import "os"

func IsDebug() bool {
	return os.Getenv("CUE_DEBUG") == "1"
}
