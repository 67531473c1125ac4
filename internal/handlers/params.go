package handlers

import (
	"net/http"
	"strconv"
)

// getParam returns a path parameter value regardless of whether the
// router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	return r.URL.Query().Get(name)
}

func getIntParam(r *http.Request, name string) (int, bool) {
	val := getParam(r, name)
	if val == "" {
		return 0, false
	}
	id, err := strconv.Atoi(val)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// paging reads limit/offset query parameters with sane defaults.
func paging(r *http.Request) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
