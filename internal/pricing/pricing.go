// Package pricing holds the pure money math used by cart and checkout.
// All amounts are int64 minor units; the storefront currency carries no
// subunit in practice, so integer arithmetic is exact.
package pricing

import "jewelstore/internal/domain"

// Subtotal sums unit price times quantity over the given lines. An empty
// cart yields 0. Lines are assumed validated at cart-mutation time.
func Subtotal(lines []domain.CartLine) int64 {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.UnitPrice * int64(line.Quantity)
	}
	return subtotal
}

// Discount computes percent of subtotal, floored by integer division.
func Discount(subtotal int64, percent int) int64 {
	return subtotal * int64(percent) / 100
}

// Total combines subtotal, discount and a flat shipping fee. The discount is
// clamped to the subtotal so the result can never go negative.
func Total(subtotal, discount, shippingFee int64) int64 {
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return subtotal - discount + shippingFee
}
