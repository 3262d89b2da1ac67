package saga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test domain: order fulfillment.
// Order events come in; shipment commands go out.

type OrderEvent interface {
	OrderID() int
}

type OrderCreated struct {
	ID           int
	CustomerName string
	Items        []string
}

func (e OrderCreated) OrderID() int { return e.ID }

type OrderUpdated struct {
	ID           int
	UpdatedItems []string
}

func (e OrderUpdated) OrderID() int { return e.ID }

type OrderCancelled struct {
	ID int
}

func (e OrderCancelled) OrderID() int { return e.ID }

type CreateShipment struct {
	ShipmentID   int
	OrderID      int
	CustomerName string
	Items        []string
}

// shipmentSaga reacts to order creation with a single shipment command and
// ignores every other order event.
func shipmentSaga() Saga[OrderEvent, CreateShipment] {
	return NewSaga(func(event OrderEvent) []CreateShipment {
		switch e := event.(type) {
		case OrderCreated:
			return []CreateShipment{{
				ShipmentID:   e.ID,
				OrderID:      e.ID,
				CustomerName: e.CustomerName,
				Items:        e.Items,
			}}
		default:
			return nil
		}
	})
}

func TestSagaReactsToOrderCreated(t *testing.T) {
	s := shipmentSaga()

	actions := s.ComputeNewActions(OrderCreated{
		ID:           1,
		CustomerName: "John Doe",
		Items:        []string{"Item 1", "Item 2"},
	})

	require.Len(t, actions, 1)
	assert.Equal(t, CreateShipment{
		ShipmentID:   1,
		OrderID:      1,
		CustomerName: "John Doe",
		Items:        []string{"Item 1", "Item 2"},
	}, actions[0])
}

func TestSagaIgnoresUnrelatedOrderEvents(t *testing.T) {
	s := shipmentSaga()

	assert.Empty(t, s.ComputeNewActions(OrderUpdated{ID: 1, UpdatedItems: []string{"Item 3"}}))
	assert.Empty(t, s.ComputeNewActions(OrderCancelled{ID: 1}))
}

func TestComputeNewActionsPreservesFanOut(t *testing.T) {
	// One event, several actions: ordering must survive untouched.
	s := NewSaga(func(event OrderEvent) []string {
		return []string{"reserve-stock", "create-shipment", "schedule-pickup"}
	})

	actions := s.ComputeNewActions(OrderCreated{ID: 7})

	assert.Equal(t, []string{"reserve-stock", "create-shipment", "schedule-pickup"}, actions)
}

func TestComputeNewActionsReturnsReactionOutputUnchanged(t *testing.T) {
	calls := 0
	s := NewSaga(func(n int) []int {
		calls++
		return []int{n * 2, n * 3}
	})

	assert.Equal(t, []int{10, 15}, s.ComputeNewActions(5))
	assert.Equal(t, 1, calls, "exactly one invocation of the reaction function per compute")
}

func TestNewConstantSaga(t *testing.T) {
	s := NewConstantSaga[OrderEvent]("notify", "audit")

	first := s.ComputeNewActions(OrderCreated{ID: 1})
	second := s.ComputeNewActions(OrderCancelled{ID: 2})

	assert.Equal(t, []string{"notify", "audit"}, first)
	assert.Equal(t, []string{"notify", "audit"}, second)

	// Mutating one result must not leak into later invocations.
	first[0] = "tampered"
	assert.Equal(t, []string{"notify", "audit"}, s.ComputeNewActions(OrderCreated{ID: 3}))
}

func TestNewEmptySaga(t *testing.T) {
	s := NewEmptySaga[OrderEvent, CreateShipment]()

	assert.Empty(t, s.ComputeNewActions(OrderCreated{ID: 1, CustomerName: "John Doe"}))
	assert.Empty(t, s.ComputeNewActions(OrderCancelled{ID: 1}))
}
