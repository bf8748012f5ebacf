package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load decodifica filePath en config eligiendo el formato por la extensión.
// Cualquier extensión que no sea .yaml/.yml se trata como JSON.
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return Decode(filePath, data, config)
}

// Decode decodifica data según la extensión de name.
func Decode(name string, data []byte, config interface{}) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}
	return nil
}

// Save escribe config en filePath con el formato que indique la extensión.
func Save(filePath string, config interface{}) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}
