// Package domain holds the values passed between the analysis packages,
// services and stores, the interfaces they implement and the sentinel errors
// they return. It has no behaviour of its own.
package domain
