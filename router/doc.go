// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the deckboard API.

	mux := router.NewRouter(db, cfg)

# Endpoints

Public:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics
	GET /        - API banner

Authenticated (Authorization: Bearer <jwt>):

	POST   /login                   - Resolve or create the caller
	GET    /plan                    - Caller's plan
	GET    /buttons                 - All buttons with tab names
	GET    /tabs                    - Tabs with button counts
	POST   /tabs/{tab}/buttons      - Add a button, creating the tab
	PUT    /tabs/{tab}/buttons/{id} - Replace a button's attributes
	DELETE /tabs/{tab}/buttons/{id} - Remove a button, pruning an empty tab
	DELETE /tabs/{tab}              - Delete a tab and its buttons
	PUT    /tabs                    - Replace the whole tab tree
*/
package router
