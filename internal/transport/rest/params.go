package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// queryParams collects query string parsing failures into one
// ValidationError.
type queryParams struct {
	r *http.Request
	v domain.ValidationError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) str(name string) *string {
	raw := strings.TrimSpace(q.r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func (q *queryParams) integer(name string) int {
	raw := q.str(name)
	if raw == nil {
		return 0
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		q.v.Add(name, "must be an integer")
		return 0
	}
	return n
}

func (q *queryParams) number(name string) *float64 {
	raw := q.str(name)
	if raw == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		q.v.Add(name, "must be a number")
		return nil
	}
	return &f
}

func (q *queryParams) boolean(name string) *bool {
	raw := q.str(name)
	if raw == nil {
		return nil
	}
	b, err := strconv.ParseBool(*raw)
	if err != nil {
		q.v.Add(name, "must be true or false")
		return nil
	}
	return &b
}

func (q *queryParams) id(name string) *uuid.UUID {
	raw := q.str(name)
	if raw == nil {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		q.v.Add(name, "must be a UUID")
		return nil
	}
	return &id
}

func (q *queryParams) err() error {
	return q.v.Err()
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

// enumPtr converts an optional raw value to a typed enum pointer.
func enumPtr[T ~string](raw *string) *T {
	if raw == nil {
		return nil
	}
	v := T(*raw)
	return &v
}
