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

/*
Package acvp drives pluggable key derivation implementations through
conformance test cases. A test driver registers one backend per algorithm in a
kdf.Registry, wraps it in a Harness, and feeds it one parsed test record at a
time, obtaining either generated key material or a pass/fail verdict.
*/
package acvp

import (
	"context"

	"github.com/gofrs/uuid"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/conformio/acvp-lib/config"
	"github.com/conformio/acvp-lib/kdf"
	"github.com/conformio/acvp-lib/log"
	"github.com/conformio/acvp-lib/store"
)

// Harness is the entry point to the library. All main functionality is exposed
// through methods on this struct.
type Harness struct {
	registry   *kdf.Registry
	ioProvider store.Provider

	sessionID uuid.UUID
}

// New creates a new Harness dispatching to the given registry and recording
// results with the given store provider. Each harness gets a fresh session ID.
func New(registry *kdf.Registry, ioProvider store.Provider) (Harness, error) {
	sessionID, err := uuid.NewV4()
	if err != nil {
		return Harness{}, err
	}

	return Harness{
		registry:   registry,
		ioProvider: ioProvider,
		sessionID:  sessionID,
	}, nil
}

// NewFromConfig creates a new Harness from the environment configuration. The
// result store is backed by bolt if a store path is configured and kept in
// memory otherwise.
func NewFromConfig(cfg config.Config, registry *kdf.Registry) (Harness, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return Harness{}, err
	}
	zerolog.SetGlobalLevel(level)

	var ioProvider store.Provider
	if cfg.StorePath == "" {
		mem := store.NewMem()
		ioProvider = &mem
	} else {
		bolt, err := store.NewBolt(cfg.StorePath)
		if err != nil {
			return Harness{}, err
		}
		ioProvider = &bolt
	}

	return New(registry, ioProvider)
}

// SessionID returns the ID of the harness' test session.
func (h *Harness) SessionID() uuid.UUID {
	return h.sessionID
}

////////////////////////////////////////////////////////
//                     Dispatch                       //
////////////////////////////////////////////////////////

// Generate dispatches the record in generate mode: the registered backend
// derives the requested key material, which is recorded and returned. The
// returned Result's Valid field carries no meaning in this mode.
func (h *Harness) Generate(ctx context.Context, alg kdf.Algorithm, record *kdf.Record, flags kdf.Flags) (Result, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "generate")
	log.WithSession(ctx, h.sessionID)

	caseID, err := uuid.NewV4()
	if err != nil {
		return Result{}, err
	}
	log.WithCase(ctx, caseID)

	dkm, err := h.registry.Generate(ctx, alg, record, flags)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		CaseID:    caseID,
		SessionID: h.sessionID,
		Algorithm: alg,
		DKM:       dkm,
	}
	if err := h.putResult(result); err != nil {
		return Result{}, err
	}

	log.Ctx(ctx).Debug().Msg("recorded generated key material")
	return result, nil
}

// Validate dispatches the record in validate mode: the registered backend
// derives the key material and compares it against the expected bytes. A
// mismatch is recorded as a failed verdict, not returned as an error.
func (h *Harness) Validate(ctx context.Context, alg kdf.Algorithm, record *kdf.Record, flags kdf.Flags, expected []byte) (Result, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "validate")
	log.WithSession(ctx, h.sessionID)

	caseID, err := uuid.NewV4()
	if err != nil {
		return Result{}, err
	}
	log.WithCase(ctx, caseID)

	valid, err := h.registry.Validate(ctx, alg, record, flags, expected)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		CaseID:    caseID,
		SessionID: h.sessionID,
		Algorithm: alg,
		Validated: true,
		Valid:     valid,
	}
	if err := h.putResult(result); err != nil {
		return Result{}, err
	}

	log.Ctx(ctx).Debug().Bool("valid", valid).Msg("recorded verdict")
	return result, nil
}

////////////////////////////////////////////////////////
//                      Results                       //
////////////////////////////////////////////////////////

// GetResult fetches a previously recorded result by its case ID.
func (h *Harness) GetResult(ctx context.Context, caseID uuid.UUID) (Result, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "get result")
	log.WithSession(ctx, h.sessionID)
	log.WithCase(ctx, caseID)

	log.Ctx(ctx).Debug().Msg("fetching result")
	bytes, err := h.ioProvider.Get(caseID, store.DataTypeResult)
	if err != nil {
		return Result{}, err
	}

	var result Result
	if err := json.Unmarshal(bytes, &result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// DeleteResult removes a previously recorded result.
func (h *Harness) DeleteResult(ctx context.Context, caseID uuid.UUID) error {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "delete result")
	log.WithSession(ctx, h.sessionID)
	log.WithCase(ctx, caseID)

	log.Ctx(ctx).Debug().Msg("deleting result")
	return h.ioProvider.Delete(caseID, store.DataTypeResult)
}

func (h *Harness) putResult(result Result) error {
	bytes, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return h.ioProvider.Put(result.CaseID, store.DataTypeResult, bytes)
}
