/*
Package token models external fungible-token ledgers the engine can
move balances on. Each ledger is identified by the token's address and
keeps per-holder balances and per-owner/spender allowances, mirroring
the usual approve/transferFrom flow of fungible tokens.
*/
package token
