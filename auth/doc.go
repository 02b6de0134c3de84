// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies bearer tokens and carries the caller's identity.

# Tokens

Tokens are HS256-signed JWTs. The subject claim is the caller's external
identity; email and name claims are optional profile hints used when a user
is first created:

	v := auth.NewJWTVerifier(secret, issuer)
	id, err := v.Verify(auth.BearerToken(r))

Tokens must carry an expiry. An issuer is checked only when one is
configured. Other signing methods, including "none", are rejected.

# Context

Middleware stores the verified identity on the request context:

	ctx = auth.WithIdentity(ctx, id)
	id, ok := auth.IdentityFrom(ctx)

IssueToken mints tokens with the same claims, for tests and local tooling.
*/
package auth
