package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los rechazos de validación
// NO usan estos errores: se devuelven como resultado {Success:false, Message}.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)
