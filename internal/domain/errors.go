package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// FieldError describe un error de validación a nivel de campo.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors agrupa todos los errores de campo de un guardado.
// Se recolectan completos antes de retornar (no fail-fast) para que el
// caller pueda pintar cada campo inválido de una sola vez.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Add agrega un error de campo y devuelve la lista actualizada.
func (e ValidationErrors) Add(field, message string) ValidationErrors {
	return append(e, FieldError{Field: field, Message: message})
}
