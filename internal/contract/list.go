package contract

// FacetAll disables filtering on a facet.
const FacetAll = "all"

// ListRequest carries the search term and facet value of a list screen.
type ListRequest struct {
	Search string
	Facet  string
}

// NewListRequest returns a request matching every record.
func NewListRequest() ListRequest {
	return ListRequest{Facet: FacetAll}
}
