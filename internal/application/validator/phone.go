package validator

import "regexp"

// PhoneFormatMessage mensaje de rechazo cuando el teléfono no cumple el formato.
const PhoneFormatMessage = "Invalid phone format. Use +1234567890 or 123-456-7890."

// Formatos aceptados: internacional (+ y 1 a 15 dígitos) o NNN-NNN-NNNN.
var phonePattern = regexp.MustCompile(`^(\+\d{1,15}|\d{3}-\d{3}-\d{4})$`)

// ValidPhone informa si phone cumple alguno de los formatos aceptados.
// La cadena vacía no es válida aquí: el que un teléfono ausente sea aceptable
// lo decide el caso de uso, no el validador.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
