package models

import (
	"errors"
	"fmt"
)

// ErrContractViolation identifica los errores de lógica del planificador: liberar un recurso
// ajeno, despertar un proceso que no estaba bloqueado, encolar dos veces, etc.
// No son recuperables; el simulador aborta la corrida cuando aparece uno.
var ErrContractViolation = errors.New("violación de contrato del planificador")

// Violation arma un error que envuelve ErrContractViolation.
func Violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
}

// Assert entra en pánico con una Violation si cond es falsa.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(Violation(format, args...))
	}
}
