package state

import (
	"time"

	"golang.org/x/text/encoding/unicode"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:   time.Now(),
		Charset: unicode.UTF8,
	}
}
