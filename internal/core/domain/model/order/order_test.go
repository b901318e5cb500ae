package order_test

import (
	"testing"
	"time"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	menuItemID, err := kernel.NewID(101)
	require.NoError(t, err)

	item, err := order.NewItem(menuItemID, "Paneer Tikka", 100.0, 2, "https://cdn.example.com/paneer.jpg")
	require.NoError(t, err)

	return []order.Item{item}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	customerID, _ := kernel.NewID(1)
	restaurantID, _ := kernel.NewID(1)

	o, err := order.NewOrder(
		customerID,
		restaurantID,
		236.0,
		"123 Test St",
		order.PaymentRefs{GatewayOrderID: "order_abc", PaymentID: "pay_abc", Signature: "sig_abc"},
		testItems(t),
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Placed status", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.Agent())
		assert.NotEmpty(t, o.Items())
		require.NoError(t, o.Validate())
	})

	t.Run("should estimate delivery exactly 45 minutes after placement", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, 45*time.Minute, o.EstimatedDelivery().Sub(o.OrderedAt()))
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		customerID, _ := kernel.NewID(1)
		restaurantID, _ := kernel.NewID(1)

		_, err := order.NewOrder(customerID, restaurantID, 10.0, "addr", order.PaymentRefs{}, nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative total amount", func(t *testing.T) {
		customerID, _ := kernel.NewID(1)
		restaurantID, _ := kernel.NewID(1)

		_, err := order.NewOrder(customerID, restaurantID, -1.0, "addr", order.PaymentRefs{}, testItems(t), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid customer and restaurant ids", func(t *testing.T) {
		restaurantID, _ := kernel.NewID(1)

		_, err := order.NewOrder(0, restaurantID, 10.0, "addr", order.PaymentRefs{}, testItems(t), time.Now())

		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	menuItemID, _ := kernel.NewID(101)

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(menuItemID, "Dish", 10.0, quantity, "")
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem(menuItemID, "", 10.0, 1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value item in order construction", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestOrder_AttachID(t *testing.T) {
	t.Run("should bind the storage-assigned id once", func(t *testing.T) {
		o := testOrder(t)
		id, _ := kernel.NewID(7)

		require.NoError(t, o.AttachID(id))
		assert.Equal(t, id, o.ID())
	})

	t.Run("should reject a second id", func(t *testing.T) {
		o := testOrder(t)
		id, _ := kernel.NewID(7)
		require.NoError(t, o.AttachID(id))

		other, _ := kernel.NewID(8)
		require.Error(t, o.AttachID(other))
		assert.Equal(t, id, o.ID())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should bind agent and move order out for delivery", func(t *testing.T) {
		o := testOrder(t)
		agentID, _ := kernel.NewID(3)

		require.NoError(t, o.Assign(agentID))

		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Agent())
		assert.Equal(t, agentID, *o.Agent())
	})

	t.Run("should reject assignment of a non-Placed order", func(t *testing.T) {
		o := testOrder(t)
		agentID, _ := kernel.NewID(3)
		require.NoError(t, o.Assign(agentID))

		otherAgent, _ := kernel.NewID(4)
		err := o.Assign(otherAgent)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, agentID, *o.Agent(), "losing assignment must not mutate the order")
	})

	t.Run("should reject invalid agent id", func(t *testing.T) {
		o := testOrder(t)

		require.Error(t, o.Assign(0))
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("should complete the normal lifecycle", func(t *testing.T) {
		o := testOrder(t)
		agentID, _ := kernel.NewID(3)
		require.NoError(t, o.Assign(agentID))

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject a second delivery", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Deliver())

		err := o.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStatusConflict)
	})
}

func TestOrder_Commission(t *testing.T) {
	testCases := []struct {
		total    float64
		expected float64
	}{
		{100.00, 15.00},
		{33.33, 5.00}, // 15% = 4.9995, rounds half up at the cent
		{0.0, 0.0},
	}

	for _, tc := range testCases {
		customerID, _ := kernel.NewID(1)
		restaurantID, _ := kernel.NewID(1)

		o, err := order.NewOrder(customerID, restaurantID, tc.total, "addr", order.PaymentRefs{}, testItems(t), time.Now())
		require.NoError(t, err)

		assert.InDelta(t, tc.expected, o.Commission(), 1e-9)
	}
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order with assignment", func(t *testing.T) {
		id, _ := kernel.NewID(10)
		customerID, _ := kernel.NewID(1)
		restaurantID, _ := kernel.NewID(2)
		agentID, _ := kernel.NewID(3)
		placedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, customerID, restaurantID, &agentID,
			order.OutForDelivery, 236.0, "123 Test St",
			order.PaymentRefs{GatewayOrderID: "order_abc"},
			placedAt, placedAt.Add(45*time.Minute),
			testItems(t),
		)

		require.NoError(t, err)
		assert.Equal(t, id, o.ID())
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Agent())
		assert.Equal(t, agentID, *o.Agent())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		id, _ := kernel.NewID(10)
		customerID, _ := kernel.NewID(1)
		restaurantID, _ := kernel.NewID(2)

		_, err := order.RestoreOrder(
			id, customerID, restaurantID, nil,
			order.Unknown, 10.0, "addr", order.PaymentRefs{},
			time.Now(), time.Now(), testItems(t),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
