package dto

// PaginatedResponse is the envelope for every list endpoint. Next and
// Previous are page numbers, nil at the ends of the result set.
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Next     *int        `json:"next"`
	Previous *int        `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPaginatedResponse builds the list envelope from a total row count and
// the requested page window.
func NewPaginatedResponse(count int64, page, pageSize int, results interface{}) PaginatedResponse {
	resp := PaginatedResponse{Count: count, Results: results}
	if int64(page*pageSize) < count {
		next := page + 1
		resp.Next = &next
	}
	if page > 1 {
		previous := page - 1
		resp.Previous = &previous
	}
	return resp
}
