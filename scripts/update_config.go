package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/config"
	"gopkg.in/yaml.v3"
)

// Para su uso se debe posicionar en la carpeta scripts
// > go run update_config.go ip_kernel 192.168.1.100
// > go run update_config.go scheduler_algorithm pip max_ticks 5000 log_level DEBUG

func main() {
	// Verificar que se pasen argumentos en pares: clave1 valor1 clave2 valor2 ...
	if len(os.Args) < 3 || len(os.Args)%2 != 1 {
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config ip_kernel 192.168.0.20 scheduler_algorithm rr")
		return
	}

	updates := make(map[string]interface{})
	for i := 1; i < len(os.Args); i += 2 {
		updates[os.Args[i]] = parseValue(os.Args[i+1])
	}

	fmt.Println("Valores a actualizar:")
	for k, v := range updates {
		fmt.Printf("  %s: %v\n", k, v)
	}

	configPath := filepath.Join("..", "kernel", "configs")
	fmt.Printf("\nProcesando configuraciones en %s\n", configPath)

	err := filepath.Walk(configPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("  Error al acceder %s: %v\n", path, err)
			return nil
		}
		if info.IsDir() || !isConfigFile(path) {
			return nil
		}
		if err := updateFile(path, updates); err != nil {
			fmt.Printf("  Error en %s: %v\n", path, err)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", configPath, err)
	}

	fmt.Println("\nProceso de actualización de configuraciones finalizado.")
}

// parseValue interpreta el valor como YAML para que números y booleanos queden con su tipo real.
// Si no se puede, se usa el string tal cual.
func parseValue(valueStr string) interface{} {
	var parsedValue interface{}
	if err := yaml.Unmarshal([]byte(valueStr), &parsedValue); err != nil || parsedValue == nil {
		return valueStr
	}
	return parsedValue
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func updateFile(path string, updates map[string]interface{}) error {
	data := make(map[string]interface{})
	if err := config.Load(path, &data); err != nil {
		return err
	}

	modified := false
	// Solo se modifican las claves que ya existen en el archivo
	for updateKey, updateValue := range updates {
		if _, ok := data[updateKey]; ok {
			data[updateKey] = updateValue
			fmt.Printf("    Modificada '%s' en %s a '%v'\n", updateKey, path, updateValue)
			modified = true
		}
	}

	if !modified {
		fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
		return nil
	}
	if err := config.Save(path, data); err != nil {
		return err
	}
	fmt.Printf("  El archivo %s ha sido actualizado correctamente.\n", path)
	return nil
}
