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

package acvp

import (
	"github.com/gofrs/uuid"

	"github.com/conformio/acvp-lib/kdf"
)

// Result records the outcome of a single dispatched test case.
type Result struct {
	// CaseID identifies the test case. It is the key the result is stored
	// under.
	CaseID uuid.UUID

	// SessionID identifies the harness session that produced the result.
	SessionID uuid.UUID

	// Algorithm is the primitive family the case was dispatched to.
	Algorithm kdf.Algorithm

	// DKM holds the generated key material in generate mode. Empty in
	// validate mode.
	DKM []byte

	// Validated reports whether the case ran in validate mode, i.e. whether
	// Valid carries meaning.
	Validated bool

	// Valid reports whether the derived key material matched the expected
	// bytes. Only meaningful when Validated is true.
	Valid bool
}
