// Package person contains all HTTP handlers for the Person resource.
// Same factory/closure shape as the address package; the interesting
// part here is the nested address filtering on list.
package person

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

// New handles POST /api/persons.
// Embedded addresses are validated along with the person (dive).
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a person")

		var in types.PersonCreate
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

		rec, err := store.CreatePerson(in)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("person created",
			slog.String("id", rec.ID.String()),
			slog.String("uni", rec.UNI),
		)
		response.WriteJSON(w, http.StatusCreated, rec)
	}
}

// GetList handles GET /api/persons.
// uni, first_name, last_name, email, phone, birth_date filter exactly;
// city and country match if ANY embedded address matches.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing persons")

		records, err := store.ListPersons(parseFilter(r.URL.Query()))
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, records)
	}
}

// GetByID handles GET /api/persons/{id}.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting a person", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rec, err := store.GetPersonByID(id)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, rec)
	}
}

// Update handles PATCH /api/persons/{id}.
// A supplied addresses list replaces the stored list wholesale — there
// is no element-by-element merge for embedded sub-records.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating a person", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var upd types.PersonUpdate
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

		rec, err := store.UpdatePersonByID(id, upd)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("person updated", slog.String("id", rec.ID.String()))
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

func parseFilter(q url.Values) types.PersonFilter {
	var f types.PersonFilter
	if v := q.Get("uni"); v != "" {
		f.UNI = &v
	}
	if v := q.Get("first_name"); v != "" {
		f.FirstName = &v
	}
	if v := q.Get("last_name"); v != "" {
		f.LastName = &v
	}
	if v := q.Get("email"); v != "" {
		f.Email = &v
	}
	if v := q.Get("phone"); v != "" {
		f.Phone = &v
	}
	if v := q.Get("birth_date"); v != "" {
		f.BirthDate = &v
	}
	if v := q.Get("city"); v != "" {
		f.City = &v
	}
	if v := q.Get("country"); v != "" {
		f.Country = &v
	}
	return f
}
