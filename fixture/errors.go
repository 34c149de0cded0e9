// SPDX-License-Identifier: MIT
// Package: standings/fixture
//
// errors.go - sentinel errors for the fixture package.
// Callers branch with errors.Is; context is attached with %w.

package fixture

import "errors"

// ErrTooFewTeams indicates that a schedule needs at least two teams.
var ErrTooFewTeams = errors.New("fixture: too few teams")

// ErrInvalidTeam indicates an empty or repeated team name.
var ErrInvalidTeam = errors.New("fixture: invalid team name")
