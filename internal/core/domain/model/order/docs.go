// Package order provides domain entities for marketplace purchases.
// It implements the Order aggregate root with its three independent status
// axes: commerce lifecycle, payment, and shipping.
//
// Within the operations core the order is a cascade target: exactly one
// active shipment drives updates to the lifecycle and shipping axes via the
// fulfillment cascade domain service. The payment axis is carried but never
// mutated here.
package order
