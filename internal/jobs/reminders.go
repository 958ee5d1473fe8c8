package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// reminderWindow ventana hacia atrás del scan de recordatorios.
const reminderWindow = 7 * 24 * time.Hour

// OrderReminders recorre las órdenes de los últimos 7 días y anota una línea de
// recordatorio por orden con su ID y el email del cliente. Cualquier falla de
// consulta se anota y la corrida termina con error; el scheduler no se cae.
type OrderReminders struct {
	orders *usecase.OrderUseCase
	sink   Sink
	now    func() time.Time
}

var _ Job = (*OrderReminders)(nil)

// NewOrderReminders construye el job.
func NewOrderReminders(orders *usecase.OrderUseCase, sink Sink) *OrderReminders {
	return &OrderReminders{orders: orders, sink: sink, now: time.Now}
}

func (j *OrderReminders) Name() string { return "order-reminders" }

// Run ejecuta un scan de recordatorios.
func (j *OrderReminders) Run(ctx context.Context) error {
	since := j.now().Add(-reminderWindow)
	orders, err := j.orders.ListSince(ctx, since)
	if err != nil {
		_ = j.sink.Append(fmt.Sprintf("Error processing reminders: %v", err))
		return err
	}
	for _, order := range orders {
		email, err := j.orders.CustomerEmail(ctx, order.CustomerID)
		if err != nil {
			_ = j.sink.Append(fmt.Sprintf("Error processing reminders: %v", err))
			return err
		}
		line := fmt.Sprintf("Reminder: Order ID %s, Customer Email %s", order.ID, email)
		if err := j.sink.Append(line); err != nil {
			return err
		}
	}
	return nil
}
