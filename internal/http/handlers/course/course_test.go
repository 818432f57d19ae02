package course_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashsosa-888/cloud-computing-project/internal/http/handlers/course"
	"github.com/kashsosa-888/cloud-computing-project/internal/storage/memory"
	"github.com/kashsosa-888/cloud-computing-project/internal/types"
	"github.com/kashsosa-888/cloud-computing-project/internal/utils/response"
)

// newRouter wires the course routes exactly as main.go does, against a
// fresh store — test isolation comes from the fresh store, not from
// resetting shared state.
func newRouter() *http.ServeMux {
	store := memory.New()
	router := http.NewServeMux()
	router.HandleFunc("POST /api/courses", course.New(store))
	router.HandleFunc("GET /api/courses", course.GetList(store))
	router.HandleFunc("GET /api/courses/{id}", course.GetByID(store))
	router.HandleFunc("PATCH /api/courses/{id}", course.Update(store))
	return router
}

func do(t *testing.T, router *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

const validBody = `{
	"course_code": "COMS4111",
	"title": "Introduction to Databases",
	"credits": 3.0,
	"semester": "Fall",
	"year": 2025,
	"department_code": "COMS"
}`

func decodeCourse(t *testing.T, rr *httptest.ResponseRecorder) types.CourseRead {
	t.Helper()
	var rec types.CourseRead
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&rec))
	return rec
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestCreateReturns201WithRecord(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodPost, "/api/courses", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rec := decodeCourse(t, rr)
	assert.NotEqual(t, uuid.UUID{}, rec.ID)
	assert.Equal(t, "COMS4111", rec.CourseCode)
	assert.Equal(t, 3.0, rec.Credits)
	assert.Equal(t, 0, rec.CurrentEnrollment)
	assert.Equal(t, []string{}, rec.Prerequisites)
}

func TestCreateWithEmptyBodyIs400(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodPost, "/api/courses", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "request body is empty", decodeError(t, rr).Error)
}

func TestCreateWithInvalidFieldsIs400(t *testing.T) {
	router := newRouter()

	body := `{
		"course_code": "bad",
		"title": "X",
		"credits": 3.75,
		"semester": "Winter",
		"year": 1999,
		"department_code": "COMS"
	}`
	rr := do(t, router, http.MethodPost, "/api/courses", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// All violations reported at once.
	resp := decodeError(t, rr)
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Contains(t, resp.Error, "CourseCode")
	assert.Contains(t, resp.Error, "Credits")
	assert.Contains(t, resp.Error, "Semester")
	assert.Contains(t, resp.Error, "Year")
}

func TestDuplicateCompositeKeyIs400(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodPost, "/api/courses", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/courses", validBody)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Error, "COMS4111 already exists for Fall 2025")
}

func TestGetUnknownIDIs404(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodGet, "/api/courses/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetMalformedIDIs400(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodGet, "/api/courses/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPatchMergesAndReturnsRecord(t *testing.T) {
	router := newRouter()

	created := decodeCourse(t, do(t, router, http.MethodPost, "/api/courses", validBody))

	rr := do(t, router, http.MethodPatch, "/api/courses/"+created.ID.String(),
		`{"title": "Advanced Database Systems", "max_enrollment": 150}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rec := decodeCourse(t, rr)
	assert.Equal(t, "Advanced Database Systems", rec.Title)
	require.NotNil(t, rec.MaxEnrollment)
	assert.Equal(t, 150, *rec.MaxEnrollment)
	// Fields absent from the payload kept their stored values.
	assert.Equal(t, created.CourseCode, rec.CourseCode)
	assert.Equal(t, created.Credits, rec.Credits)
	assert.Equal(t, created.Year, rec.Year)
}

func TestPatchIntoCollidingKeyIs400(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodPost, "/api/courses", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	other := decodeCourse(t, do(t, router, http.MethodPost, "/api/courses",
		strings.Replace(validBody, "2025", "2026", 1)))

	rr = do(t, router, http.MethodPatch, "/api/courses/"+other.ID.String(),
		`{"year": 2025}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Error, "already exists for Fall 2025")
}

func TestPatchUnknownIDIs404(t *testing.T) {
	router := newRouter()

	rr := do(t, router, http.MethodPatch, "/api/courses/"+uuid.NewString(),
		`{"title": "x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListFilters(t *testing.T) {
	router := newRouter()

	require.Equal(t, http.StatusCreated,
		do(t, router, http.MethodPost, "/api/courses", validBody).Code)
	require.Equal(t, http.StatusCreated,
		do(t, router, http.MethodPost, "/api/courses", `{
			"course_code": "COMS4115",
			"title": "Programming Languages and Translators",
			"credits": 4.5,
			"semester": "Spring",
			"year": 2025,
			"department_code": "COMS"
		}`).Code)

	var records []types.CourseRead

	rr := do(t, router, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&records))
	assert.Len(t, records, 2)

	rr = do(t, router, http.MethodGet, "/api/courses?semester=Spring", "")
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "COMS4115", records[0].CourseCode)

	rr = do(t, router, http.MethodGet, "/api/courses?title=translators", "")
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "COMS4115", records[0].CourseCode)

	rr = do(t, router, http.MethodGet, "/api/courses?min_credits=4.0", "")
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, 4.5, records[0].Credits)

	// No matches is an empty array, never an error.
	rr = do(t, router, http.MethodGet, "/api/courses?year=2030", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&records))
	assert.Empty(t, records)

	// Malformed numeric filter is rejected, not ignored.
	rr = do(t, router, http.MethodGet, "/api/courses?year=abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
