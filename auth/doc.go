// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the credential verifier and UVC generation.

# Password Hashing

Voter and commissioner secrets are hashed with argon2id and stored in PHC
string format:

	hash, err := auth.HashPassword(password)
	ok, err := auth.VerifyPassword(presented, hash)

The parameters (memory, iterations, parallelism) are encoded in the hash
itself, so they can be tuned later without re-hashing existing accounts.
VerifyPassword returns false for a mismatch - that is a normal outcome, not
an error. Errors indicate a malformed stored hash.

Comparison uses crypto/subtle constant-time comparison.

# UVC Generation

When no credential file is supplied, the seeder generates fresh single-use
voting credentials:

	code := auth.GenerateUVC() // e.g. "3F94C01A77B2"

Codes are 12 uppercase hex characters drawn from a random UUID. Uniqueness
is ultimately enforced by the credential store's primary key, not here.
*/
package auth
