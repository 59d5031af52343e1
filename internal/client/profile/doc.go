// Package profile persists user profiles and the active-session pointer.
//
// Two records live in the key-value store:
//
//	currentUser  the signed-in user's profile, or absent when logged out
//	users        JSON array of every registered profile, unique on email
//
// Every operation that touches both records runs inside one kv transaction,
// so after an operation returns no reader can see the pointer updated and
// the matching users row stale, or the reverse.
//
// Save has one deliberate exception: when no users row matches the active
// profile's email, the pointer is written and the table is left as is.
//
// A currentUser value that cannot be decoded loads as "no active user". A
// users value that cannot be decoded fails the operation that needed it
// with common.ErrCorruptPersistedState and nothing is written.
package profile
