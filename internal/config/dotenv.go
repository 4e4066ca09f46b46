package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kittens-api/pkg/logger"
)

const (
	dotenvFilename = ".env"
	// envFileVar names an explicit env file. It must exist when set.
	envFileVar = "ENV_FILE"
)

func loadDotEnv(log logger.Logger) error {
	path, explicit := os.LookupEnv(envFileVar)
	if !explicit || path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path, err = findDotEnv(cwd)
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("dotenv: no file found, using process env only")
			return nil
		}
		if err != nil {
			return err
		}
	}

	values, err := parseDotEnv(path)
	if err != nil {
		return err
	}

	loaded, skipped, err := applyDotEnv(values)
	if err != nil {
		return err
	}

	log.Info("dotenv: loaded variables", "count", len(loaded), "path", path)
	if len(skipped) > 0 {
		log.Debug("dotenv: process env wins", "keys", strings.Join(skipped, ","))
	}
	return nil
}

// findDotEnv looks for .env from dir upwards and gives up after the
// directory holding go.mod, so a stray file above the checkout is ignored.
func findDotEnv(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, dotenvFilename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

type dotenvValue struct {
	key   string
	value string
}

// parseDotEnv reads KEY=VALUE lines in file order. Blank lines, comments
// and an optional "export " prefix are allowed; anything else is an error
// naming the line.
func parseDotEnv(path string) ([]dotenvValue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var values []dotenvValue
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		key, raw, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || !validEnvKey(key) {
			return nil, fmt.Errorf("%s:%d: expected KEY=VALUE", path, lineNo)
		}
		value, err := dotenvUnquote(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		values = append(values, dotenvValue{key: key, value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// applyDotEnv sets values not already present in the process env and
// returns the keys it set and the keys it left alone.
func applyDotEnv(values []dotenvValue) ([]string, []string, error) {
	var loaded, skipped []string
	for _, v := range values {
		if _, exists := os.LookupEnv(v.key); exists {
			skipped = append(skipped, v.key)
			continue
		}
		if err := os.Setenv(v.key, v.value); err != nil {
			return loaded, skipped, err
		}
		loaded = append(loaded, v.key)
	}
	return loaded, skipped, nil
}

func validEnvKey(key string) bool {
	if key == "" || (key[0] >= '0' && key[0] <= '9') {
		return false
	}
	for _, c := range key {
		if c != '_' && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func dotenvUnquote(value string) (string, error) {
	if len(value) >= 2 && value[0] == value[len(value)-1] {
		switch value[0] {
		case '"':
			unquoted, err := strconv.Unquote(value)
			if err != nil {
				return "", fmt.Errorf("bad double-quoted value: %w", err)
			}
			return unquoted, nil
		case '\'':
			return value[1 : len(value)-1], nil
		}
	}
	// unquoted values end at " #"
	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	if idx := strings.Index(value, "\t#"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value, nil
}
