// Package address contains all HTTP handlers for the Address resource.
//
// Handlers use the factory/closure pattern: each exported function takes
// the storage dependency and returns the http.HandlerFunc the router
// needs. The factory runs once at startup; the returned closure runs on
// every request. The request pipeline is always the same three steps —
// decode, validate, hand off to storage — with errors mapped to HTTP
// statuses by the response package.
package address

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/kashsosa-888/cloud-computing-project/internal/storage"
	"github.com/kashsosa-888/cloud-computing-project/internal/types"
	"github.com/kashsosa-888/cloud-computing-project/internal/utils/response"
	"github.com/kashsosa-888/cloud-computing-project/internal/validation"
)

// New handles POST /api/addresses.
// Returns 201 with the stored record, 400 on a bad payload.
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an address")

		var in types.AddressCreate
		err := json.NewDecoder(r.Body).Decode(&in)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validation.Struct(in); err != nil {
			response.WriteError(w, err)
			return
		}

		rec, err := store.CreateAddress(in)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("address created", slog.String("id", rec.ID.String()))
		response.WriteJSON(w, http.StatusCreated, rec)
	}
}

// GetList handles GET /api/addresses.
// Every query parameter (street, city, state, postal_code, country) is
// an optional exact-match filter; results come back in insertion order.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing addresses")

		records, err := store.ListAddresses(parseFilter(r.URL.Query()))
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, records)
	}
}

// GetByID handles GET /api/addresses/{id}.
// Returns 404 when the id has never been stored.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting an address", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rec, err := store.GetAddressByID(id)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, rec)
	}
}

// Update handles PATCH /api/addresses/{id}.
// The payload carries only the fields to change; everything else keeps
// its stored value. Returns the merged record.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating an address", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var upd types.AddressUpdate
		err := json.NewDecoder(r.Body).Decode(&upd)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validation.Struct(upd); err != nil {
			response.WriteError(w, err)
			return
		}

		rec, err := store.UpdateAddressByID(id, upd)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("address updated", slog.String("id", rec.ID.String()))
		response.WriteJSON(w, http.StatusOK, rec)
	}
}

// parseID extracts and parses the {id} path segment. On failure it writes
// the 400 response itself and returns ok=false.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be a UUID")))
		return uuid.UUID{}, false
	}
	return id, true
}

// parseFilter builds the filter from query parameters. An absent (or
// empty) parameter imposes no constraint.
func parseFilter(q url.Values) types.AddressFilter {
	var f types.AddressFilter
	if v := q.Get("street"); v != "" {
		f.Street = &v
	}
	if v := q.Get("city"); v != "" {
		f.City = &v
	}
	if v := q.Get("state"); v != "" {
		f.State = &v
	}
	if v := q.Get("postal_code"); v != "" {
		f.PostalCode = &v
	}
	if v := q.Get("country"); v != "" {
		f.Country = &v
	}
	return f
}
