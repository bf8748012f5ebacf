package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// StatusError se devuelve cuando el servidor responde con un status distinto de 2xx.
// Body contiene lo que haya respondido el servidor.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Status Error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DoRequest es una función genérica para realizar peticiones HTTP (GET, POST, PUT, DELETE, etc.) desde un cliente.
// Retorna el cuerpo de la respuesta. Si el status no es 2xx devuelve un *StatusError junto con el cuerpo.
//
// Parámetros:
//   - ctx: contexto de la petición
//   - ip: la IP o dominio del servidor
//   - port: el puerto al que se hará la petición
//   - metodo: metodo HTTP
//   - query: parte final de la URL
//   - bodies ...[]byte: (opcional) body del request (usado por ejemplo en un POST/PUT), puede pasarse vacío.
//
// Ejemplo:
//
//	body, err := client.DoRequest(ctx, "127.0.0.1", 8001, "GET", "kernel/planificadores")
//	if err != nil {
//		slog.Error(fmt.Sprintf("Ocurrió un error: %v", err))
//		return
//	}
func DoRequest(ctx context.Context, ip string, port int, metodo string, query string, bodies ...[]byte) ([]byte, error) {
	url := fmt.Sprintf("http://%s:%d/%s", ip, port, query)

	req, err := http.NewRequestWithContext(ctx, metodo, url, ifBody(bodies...))
	if err != nil {
		slog.Error(fmt.Sprintf("error creando request a ip: %s puerto: %d", ip, port))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	respuesta, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Error(fmt.Sprintf("error enviando request a ip: %s puerto: %d - %v", ip, port, err))
		return nil, err
	}
	defer respuesta.Body.Close()

	body, err := io.ReadAll(respuesta.Body)
	if err != nil {
		return nil, fmt.Errorf("leyendo respuesta de %s: %w", url, err)
	}

	if respuesta.StatusCode < 200 || respuesta.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: respuesta.StatusCode, Body: body}
		slog.Error(statusErr.Error(), "url", url)
		return body, statusErr
	}
	return body, nil
}

func ifBody(bodies ...[]byte) io.Reader {
	if len(bodies) == 0 || bodies[0] == nil {
		return nil
	}
	return bytes.NewBuffer(bodies[0])
}
