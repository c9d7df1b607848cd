package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("categoría no encontrada")
	ErrNoPendingEdit = errors.New("no hay una edición en curso")
	ErrInvalidInput  = errors.New("entrada inválida")
)
