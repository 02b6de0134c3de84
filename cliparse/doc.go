// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse reads server configuration from flags and environment.

Flags win over environment variables:

	-p           PORT           server port (default 3318)
	-d           DATABASE_URL   database path or URL (required)
	-t           DATABASE_TYPE  sqlite or postgres (default sqlite)
	-jwt-secret  JWT_SECRET     token signing secret (required)
	-jwt-issuer  JWT_ISSUER     required token issuer
	-cors-origin CORS_ORIGIN    allowed browser origin

	cfg, err := cliparse.ParseFlags(os.Args[1:])
*/
package cliparse
