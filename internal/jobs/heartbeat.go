package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Heartbeat escribe una línea "CRM is alive" en su log y luego sondea el eco
// trivial de la API. La sonda es best-effort: su falla se anota en el log y
// nunca hace fallar la corrida; una falla al escribir en el log sí la hace
// fallar, sea la línea del latido o la de la sonda.
type Heartbeat struct {
	sink     Sink
	helloURL string
	client   *http.Client
}

var _ Job = (*Heartbeat)(nil)

// NewHeartbeat construye el job apuntando al endpoint de eco de la API.
func NewHeartbeat(sink Sink, helloURL string) *Heartbeat {
	return &Heartbeat{
		sink:     sink,
		helloURL: helloURL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (j *Heartbeat) Name() string { return "heartbeat" }

// Run ejecuta una corrida del heartbeat.
func (j *Heartbeat) Run(ctx context.Context) error {
	if err := j.sink.Append("CRM is alive"); err != nil {
		return err
	}
	return j.sink.Append(j.probe(ctx))
}

// probe consulta el endpoint de eco y devuelve la línea a anotar.
func (j *Heartbeat) probe(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.helloURL, nil)
	if err != nil {
		return fmt.Sprintf("hello check failed: %v", err)
	}
	resp, err := j.client.Do(req)
	if err != nil {
		return fmt.Sprintf("hello check failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("hello check failed: status %d", resp.StatusCode)
	}
	var body struct {
		Hello string `json:"hello"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Sprintf("hello check failed: %v", err)
	}
	return fmt.Sprintf("hello: %s", body.Hello)
}
