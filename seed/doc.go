// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed populates an empty database at startup: the fixed set of
constituencies, parties, and candidates, the single-use voter credential
pool (loaded from the configured UVC file, or generated and written back
when the file is absent), and the commissioner account from configuration.

Every step checks its table first and is skipped when data already exists,
so Run is safe to call on every boot.
*/
package seed
