// Copyright (C) 2022 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package log contains helpers for the context logger used across the library.
package log

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// CopyCtxLogger returns a copy of the context holding its own copy of the
// context logger, so that fields added further down a call chain do not leak
// into the caller's logger.
func CopyCtxLogger(ctx context.Context) context.Context {
	logger := zerolog.Ctx(ctx).With().Logger()
	return logger.WithContext(ctx)
}

// Ctx returns the logger associated with the context.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithMethod adds a method field to the context logger.
func WithMethod(ctx context.Context, method string) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("method", method)
	})
}

// WithSession adds a test session ID field to the context logger.
func WithSession(ctx context.Context, sid uuid.UUID) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Stringer("sid", sid)
	})
}

// WithCase adds a test case ID field to the context logger.
func WithCase(ctx context.Context, cid uuid.UUID) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Stringer("cid", cid)
	})
}
