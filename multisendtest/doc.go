/*
Package multisendtest provides mocks and doubles for testing handlers
and decorators without a full application: transactions and messages
with programmable results, authenticators, throwaway addresses, a
token ledger with scripted failures and receiver hooks that fail,
reenter or burn gas on demand.
*/
package multisendtest
