package server

import (
	"net/http"

	"berry_buddy/internal/domain/value"
)

func pageFromQuery(r *http.Request) value.Page {
	query := r.URL.Query()

	return value.ParsePage(query.Get("limit"), query.Get("offset"))
}
