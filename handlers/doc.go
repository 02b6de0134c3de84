// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the deckboard API.

Every handler runs behind token verification. The verified subject is mapped
to an internal user on each request, so a first call from a new identity
creates the user.

# Handlers

SessionHandler: login and plan lookup.

ButtonHandler: list, add, update and remove buttons. Adding to an unknown
tab creates it; removing a tab's last button deletes the tab.

TabHandler: list tabs, delete a tab with its buttons, and replace the whole
tree in one transaction.

# Errors

Store errors map to status codes:

  - not found (including rows owned by another user): 404
  - malformed identity: 400
  - anything else: 500, with details only in the log
*/
package handlers
