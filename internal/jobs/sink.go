package jobs

import (
	"fmt"
	"os"
	"time"
)

// Sink destino append-only de los job runners. Cada escritura es una línea
// timestamp + mensaje; no hay rotación ni límite de tamaño.
type Sink interface {
	Append(message string) error
}

// Formatos de timestamp por log (heredados de los logs originales del CRM).
const (
	HeartbeatTimeLayout = "02/01/2006-15:04:05"
	ReportTimeLayout    = "2006-01-02 15:04:05"
)

// FileSink agrega líneas "timestamp mensaje\n" a un archivo fijo, creándolo si
// no existe.
type FileSink struct {
	path   string
	layout string
	now    func() time.Time
}

var _ Sink = (*FileSink)(nil)

// NewFileSink construye el sink para path con el layout de timestamp dado.
func NewFileSink(path, layout string) *FileSink {
	return &FileSink{path: path, layout: layout, now: time.Now}
}

// Append agrega una línea al archivo.
func (s *FileSink) Append(message string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir log %s: %w", s.path, err)
	}
	_, werr := fmt.Fprintf(f, "%s %s\n", s.now().Format(s.layout), message)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("escribir log %s: %w", s.path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("cerrar log %s: %w", s.path, cerr)
	}
	return nil
}
