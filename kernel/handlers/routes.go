package handlers

import (
	"net/http"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/helpers"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/web/handlers"
)

// NewMux arma los endpoints del kernel.
func NewMux(runs *helpers.RunMap) *http.ServeMux {
	mux := http.NewServeMux()

	/* ----------> ENDPOINTS <----------*/
	mux.HandleFunc("GET /{$}", handlers.HandshakeHandler("Bienvenido al módulo de Kernel"))
	mux.HandleFunc("GET /kernel", handlers.HandshakeHandler("Kernel en funcionamiento 🚀"))
	mux.HandleFunc("GET /kernel/planificadores", GetSchedulersHandler())

	//Simulaciones
	mux.HandleFunc("POST /kernel/simulaciones", SimulateHandler(runs))
	mux.HandleFunc("GET /kernel/simulaciones", GetRunsHandler(runs))
	mux.HandleFunc("GET /kernel/simulaciones/{id}", GetRunHandler(runs))
	mux.HandleFunc("DELETE /kernel/simulaciones/{id}", DeleteRunHandler(runs))

	return mux
}
