package jobs

import "context"

// Job unidad de trabajo programada. Sin estado entre ejecuciones ni cola de
// reintentos: una corrida fallida deja su línea de error y espera el próximo
// tick del scheduler externo.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}
