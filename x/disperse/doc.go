/*
Package disperse implements batch settlement of native funds and
external token balances: one message pays many recipients, either by
splitting an attached value equally or by explicit per-recipient
amounts, with an optional flat fee collected once per batch.

All funds move through a dedicated engine account. A native batch is
best effort: a recipient whose payment fails (rejecting receiver hook,
gas exhaustion) is skipped, the failure is recorded as a tag and the
amount stays on the engine account until the owner recovers it. A
token batch is all or nothing: token ledgers give no isolation
guarantees per transfer, so any forwarding failure aborts the whole
message and the savepoint unwinds the pulled balance.

The engine owner controls the fee switch, the flat fee amount, the fee
collector address and the recovery of stranded funds. Ownership is set
at genesis and cannot be transferred.

A reentrancy guard spans all handlers of this package. A receiver hook
that tries to dispatch another message while a batch is running fails
with ErrReentrantCall without affecting the outer batch.
*/
package disperse
