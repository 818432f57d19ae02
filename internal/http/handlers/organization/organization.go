// Package organization contains all HTTP handlers for the Organization
// resource. The name filter is a case-insensitive substring match —
// intentionally looser than the exact matches used everywhere else.
package organization

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/kashsosa-888/cloud-computing-project/internal/storage"
	"github.com/kashsosa-888/cloud-computing-project/internal/types"
	"github.com/kashsosa-888/cloud-computing-project/internal/utils/response"
	"github.com/kashsosa-888/cloud-computing-project/internal/validation"
)

// New handles POST /api/organizations.
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an organization")

		var in types.OrganizationCreate
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

		rec, err := store.CreateOrganization(in)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("organization created",
			slog.String("id", rec.ID.String()),
			slog.String("name", rec.Name),
		)
		response.WriteJSON(w, http.StatusCreated, rec)
	}
}

// GetList handles GET /api/organizations.
// Filters: name (substring, case-insensitive), org_type, founded_year,
// contact_person_id (exact), city/country (any embedded address).
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing organizations")

		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		records, err := store.ListOrganizations(filter)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, records)
	}
}

// GetByID handles GET /api/organizations/{id}.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting an organization", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rec, err := store.GetOrganizationByID(id)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, rec)
	}
}

// Update handles PATCH /api/organizations/{id}.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating an organization", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var upd types.OrganizationUpdate
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

		rec, err := store.UpdateOrganizationByID(id, upd)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("organization updated", slog.String("id", rec.ID.String()))
		response.WriteJSON(w, http.StatusOK, rec)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be a UUID")))
		return uuid.UUID{}, false
	}
	return id, true
}

func parseFilter(q url.Values) (types.OrganizationFilter, error) {
	var f types.OrganizationFilter
	if v := q.Get("name"); v != "" {
		f.Name = &v
	}
	if v := q.Get("org_type"); v != "" {
		f.OrgType = &v
	}
	if v := q.Get("founded_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid founded_year filter: %q is not an integer", v)
		}
		f.FoundedYear = &year
	}
	if v := q.Get("contact_person_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("invalid contact_person_id filter: %q is not a UUID", v)
		}
		f.ContactPersonID = &id
	}
	if v := q.Get("city"); v != "" {
		f.City = &v
	}
	if v := q.Get("country"); v != "" {
		f.Country = &v
	}
	return f, nil
}
