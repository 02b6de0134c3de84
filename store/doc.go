// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists users, tabs and buttons.

Every operation is scoped to an internal user id: a tab or button owned by
someone else is reported as ErrNotFound, never as a permission error.

Tabs exist only while they hold buttons, except through import or direct
creation. Adding a button creates its tab on demand; a concurrent creator
losing the unique-name race re-reads the winner's row. Removing the last
button prunes the tab with a single conditional delete.

Import replaces a user's whole tree inside one transaction.
*/
package store
