package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv preloads variables from the given .env files (".env" when none
// are given). Variables already present in the process environment win.
// A missing file is not an error: it reports loaded=false instead.
func LoadDotEnv(paths ...string) (loaded bool, err error) {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
