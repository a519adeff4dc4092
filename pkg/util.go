package pkg

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return isDir == stat.IsDir(), nil
}

// IntPathVar reads the named mux path variable as an int.
func IntPathVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, fmt.Errorf("path var %s empty", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path var %s: %w", name, err)
	}
	return v, nil
}
