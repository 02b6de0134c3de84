// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the records and request/response types of the API.

ButtonSpec holds the user-editable button attributes. Function is required;
the rest are optional and serialize as absent when unset. Button adds the
row ids, and ButtonView adds the owning tab name for listings.

Validation rules live in the validate struct tags and are enforced by the
validation package.
*/
package models
