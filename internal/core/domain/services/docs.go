// Package services provides domain services that implement business logic
// spanning multiple aggregates of the parcel network.
//
// The package includes:
//   - SettlementPolicy: the commission policy that turns a shipment's
//     delivery fee into the amount a settlement batch owes a courier or a
//     merchant
package services
