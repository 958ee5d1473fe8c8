package entity

import "time"

// Customer representa un cliente del CRM. El email es único en todo el sistema;
// el teléfono es opcional y solo se valida si viene informado.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string // vacío = no informado
	CreatedAt time.Time
}
