package endpoints

// Endpoints aggregates every endpoint exposed by the HTTP router.
type Endpoints struct {
	OfferEndpoint  OfferEndpoint
	SearchEndpoint SearchEndpoint
}
