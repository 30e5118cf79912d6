/*
Package cash defines a simple wallet model and a controller to move
fixed-point coins between addresses.

Wallets are stored one per address and hold a sorted set of coins.
Controller.Deliver is the payment primitive for pushing funds to an
address that may have registered a Receiver hook: the hook runs on a
cache wrap with a small gas allowance, so a misbehaving or expensive
recipient fails only its own payment and cannot hold the caller
hostage.
*/
package cash
