package domain

import "errors"

// ErrMenuItemNotFound is returned when a catalog lookup has no matching item.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrCacheMiss is returned by a TurnCache when no outcome is stored under a key.
var ErrCacheMiss = errors.New("cache miss")

// ErrInvalidMenu is returned when a menu definition fails validation.
var ErrInvalidMenu = errors.New("invalid menu")
