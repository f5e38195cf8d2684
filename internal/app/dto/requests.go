package dto

// SearchIDRequest carries the pesquisa id taken from the URL path.
type SearchIDRequest struct {
	ID int64
}

// CityQueryRequest carries the typeahead filter term.
type CityQueryRequest struct {
	Query string
}

// UpdateSearchRequest is a full form replacement for one saved search.
type UpdateSearchRequest struct {
	ID int64 `json:"-"`
	SearchForm
}
