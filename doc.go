/*
Package multisend defines the common interfaces that tie the engine
together: messages and transactions, handlers and decorators, the
key-value store with savepoint support, and addresses.

The business logic lives in the x/ extension packages. They only depend
on the contracts defined here, so any piece (store backend, router,
authentication) can be swapped without touching the settlement code.
*/
package multisend
