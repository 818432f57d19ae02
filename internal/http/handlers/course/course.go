// Package course contains all HTTP handlers for the Course resource.
//
// Course is the one resource with a cross-record constraint: at most one
// stored Course per (course_code, semester, year). The check lives in
// the store (it has to run under the store's lock); these handlers just
// surface the ConflictError as a 400.
package course

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

// New handles POST /api/courses.
// Fails with 400 when the payload violates a field constraint OR when
// another Course already occupies the same (course_code, semester, year).
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a course")

		var in types.CourseCreate
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

		rec, err := store.CreateCourse(in)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("course created",
			slog.String("id", rec.ID.String()),
			slog.String("course_code", rec.CourseCode),
			slog.String("semester", rec.Semester),
			slog.Int("year", rec.Year),
		)
		response.WriteJSON(w, http.StatusCreated, rec)
	}
}

// GetList handles GET /api/courses.
// title is a case-insensitive substring filter; credits matches exactly
// while min_credits/max_credits are inclusive bounds; everything else is
// an exact match.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing courses")

		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		records, err := store.ListCourses(filter)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, records)
	}
}

// GetByID handles GET /api/courses/{id}.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting a course", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rec, err := store.GetCourseByID(id)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, rec)
	}
}

// Update handles PATCH /api/courses/{id}.
// The uniqueness check runs against the EFFECTIVE key after the merge —
// unset key fields inherit from the stored record — and excludes the
// record's own id, so a Course can be updated without changing its key.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating a course", slog.String("id", r.PathValue("id")))

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var upd types.CourseUpdate
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

		rec, err := store.UpdateCourseByID(id, upd)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		slog.Info("course updated", slog.String("id", rec.ID.String()))
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

func parseFilter(q url.Values) (types.CourseFilter, error) {
	var f types.CourseFilter
	if v := q.Get("course_code"); v != "" {
		f.CourseCode = &v
	}
	if v := q.Get("title"); v != "" {
		f.Title = &v
	}
	if v := q.Get("department_code"); v != "" {
		f.DepartmentCode = &v
	}
	if v := q.Get("semester"); v != "" {
		f.Semester = &v
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid year filter: %q is not an integer", v)
		}
		f.Year = &year
	}
	if v := q.Get("instructor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("invalid instructor_id filter: %q is not a UUID", v)
		}
		f.InstructorID = &id
	}
	if v := q.Get("credits"); v != "" {
		credits, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid credits filter: %q is not a number", v)
		}
		f.Credits = &credits
	}
	if v := q.Get("min_credits"); v != "" {
		minCredits, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_credits filter: %q is not a number", v)
		}
		f.MinCredits = &minCredits
	}
	if v := q.Get("max_credits"); v != "" {
		maxCredits, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid max_credits filter: %q is not a number", v)
		}
		f.MaxCredits = &maxCredits
	}
	return f, nil
}
