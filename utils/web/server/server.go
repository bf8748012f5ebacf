package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// InitServer levanta el servidor sobre handler y bloquea hasta que ctx se cancele o falle el listen.
// Al cancelarse ctx se hace un apagado ordenado.
//
// Parámetros:
//   - ctx: contexto que controla la vida del servidor
//   - port: puerto donde se iniciará el servidor
//   - handler: mux con los endpoints del módulo
//
// Ejemplo:
//
//	func main() {
//		mux := http.NewServeMux()
//		mux.HandleFunc("GET /kernel", handlers.HandshakeHandler("Kernel en funcionamiento"))
//		if err := server.InitServer(ctx, 8001, mux); err != nil {
//			slog.Error("error initializing server", "err", err)
//		}
//	}
func InitServer(ctx context.Context, port int, handler http.Handler) error {
	addr := ":" + strconv.Itoa(port)
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Servidor escuchando", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		slog.Error("Error al escuchar en el puerto "+addr, "err", err)
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// SendJsonResponse retorna la respuesta del servidor en formato JSON con status 200.
//
// Parámetros:
//   - writer: el http.ResponseWriter con el que se escribe la respuesta HTTP
//   - data: cualquier estructura de datos que querés enviar al cliente, se convierte automáticamente a JSON.
func SendJsonResponse(writer http.ResponseWriter, data interface{}) {
	SendJsonResponseWithStatus(writer, http.StatusOK, data)
}

// SendJsonResponseWithStatus igual que SendJsonResponse pero con el status indicado.
func SendJsonResponseWithStatus(writer http.ResponseWriter, status int, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error al convertir datos a JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write(response)
}

// ErrorResponse es el cuerpo que se devuelve ante cualquier error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendError responde con {"error": message} y el status indicado.
func SendError(writer http.ResponseWriter, status int, message string) {
	SendJsonResponseWithStatus(writer, status, ErrorResponse{Error: message})
}
