package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have distinct values with Unknown as zero", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))

		statuses := []order.Status{
			order.Unknown,
			order.Pending,
			order.Confirmed,
			order.Shipped,
			order.Canceled,
		}
		seen := map[order.Status]bool{}
		for _, status := range statuses {
			assert.False(t, seen[status], "status %d duplicated", int(status))
			seen[status] = true
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate the four defined statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Canceled} {
			t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(5), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return display names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "PENDING"},
			{order.Confirmed, "CONFIRMED"},
			{order.Shipped, "SHIPPED"},
			{order.Canceled, "CANCELED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatus_IsOpen(t *testing.T) {
	t.Run("should report PENDING and CONFIRMED as open", func(t *testing.T) {
		assert.True(t, order.Pending.IsOpen())
		assert.True(t, order.Confirmed.IsOpen())
		assert.False(t, order.Shipped.IsOpen())
		assert.False(t, order.Canceled.IsOpen())
		assert.False(t, order.Unknown.IsOpen())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report SHIPPED and CANCELED as terminal", func(t *testing.T) {
		assert.True(t, order.Shipped.IsTerminal())
		assert.True(t, order.Canceled.IsTerminal())
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Confirmed.IsTerminal())
	})
}

func TestStatus_Transitions(t *testing.T) {
	allStatuses := []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Canceled}

	t.Run("confirm should succeed only from PENDING", func(t *testing.T) {
		for _, from := range allStatuses {
			t.Run(fmt.Sprintf("from %s", from), func(t *testing.T) {
				next, err := from.Confirm()

				if from == order.Pending {
					require.NoError(t, err)
					assert.Equal(t, order.Confirmed, next)
					return
				}

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidStateTransition)
				assert.Contains(t, err.Error(), from.String())
				assert.Equal(t, order.Unknown, next)
			})
		}
	})

	t.Run("ship should succeed only from CONFIRMED", func(t *testing.T) {
		for _, from := range allStatuses {
			t.Run(fmt.Sprintf("from %s", from), func(t *testing.T) {
				next, err := from.Ship()

				if from == order.Confirmed {
					require.NoError(t, err)
					assert.Equal(t, order.Shipped, next)
					return
				}

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidStateTransition)
				assert.Contains(t, err.Error(), from.String())
			})
		}
	})

	t.Run("cancel should succeed only from PENDING or CONFIRMED", func(t *testing.T) {
		for _, from := range allStatuses {
			t.Run(fmt.Sprintf("from %s", from), func(t *testing.T) {
				next, err := from.Cancel()

				if from.IsOpen() {
					require.NoError(t, err)
					assert.Equal(t, order.Canceled, next)
					return
				}

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidStateTransition)
				assert.Contains(t, err.Error(), from.String())
			})
		}
	})

	t.Run("should carry operation and current status in the error", func(t *testing.T) {
		_, err := order.Shipped.Cancel()

		require.Error(t, err)
		var transitionErr *order.InvalidStateTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "cancel", transitionErr.Operation)
		assert.Equal(t, order.Shipped, transitionErr.Current)
		assert.Contains(t, err.Error(), "cannot cancel order in status SHIPPED")
	})
}
