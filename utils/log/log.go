package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// InitLogger permite loguear tanto en consola como en archivo según el nivel que se le pase.
// Si logPath está vacío solo se escribe por consola.
//
// Parámetros:
//   - logPath: la ubicación donde se va encontrar el archivo
//   - logLevel: nivel de logueo, este dato viene definido en el archivo de config.
//
// Ejemplo:
//
//	func main() {
//		log.InitLogger("./logs/kernel.log", "INFO")
//	}
func InitLogger(logPath string, logLevel string) {
	var writer io.Writer = os.Stdout

	if logPath != "" {
		//Creamos el archivo "modulo".log en modo escritura, si ocurre algún error finalizamos con panic.
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			panic(err)
		}
		// Usa io.MultiWriter para escribir a múltiples destinos: consola y archivo.
		writer = io.MultiWriter(os.Stdout, logFile)
	}

	logger, err := NewLogger(writer, logLevel)
	slog.SetDefault(logger)

	// Escribimos en el log el warning que obtenemos por no setear el logLevel
	if err != nil {
		slog.Warn(err.Error())
	}

	slog.Debug("Se ha configurado correctamente el logger y el archivo de configuración. ")
}

// InitQuietLogger solo deja pasar errores, por stderr.
func InitQuietLogger() {
	logger, _ := NewLogger(os.Stderr, "ERROR")
	slog.SetDefault(logger)
}

// NewLogger arma un logger de texto sobre writer. Si el nivel no existe devuelve un logger en INFO junto con el error.
func NewLogger(writer io.Writer, logLevel string) (*slog.Logger, error) {
	level, err := convertStringToLogLevel(logLevel)

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler), err
}

// convertStringToLogLevel modifica dinámicamente el nivel de log que deseamos tener en el sistema.
func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("No existe %s, se coloca INFO por defecto. ", levelStr)
	}
}
