package core

// IDGenerator produces opaque unique identifiers for accounts and transactions
type IDGenerator interface {
	NewID() string
}
