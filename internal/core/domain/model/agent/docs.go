// Package agent contains the DeliveryAgent aggregate: availability state,
// contact details, and the financial counters settled when deliveries
// complete. The Available/Busy flag mirrors whether exactly one
// out-for-delivery order currently references the agent; the workflows in
// the commands package keep the two aggregates in step inside one
// transaction.
package agent
