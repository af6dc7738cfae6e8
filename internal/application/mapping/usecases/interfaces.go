package usecases

import "context"

// SlideClient is a client entry from the Slide directory.
type SlideClient struct {
	ID   string
	Name string
}

// Company is a company entry from the ConnectWise directory.
type Company struct {
	ID   int
	Name string
}

// SlideDirectory lists clients known to Slide.
type SlideDirectory interface {
	Clients(ctx context.Context) ([]SlideClient, error)
}

// CompanyDirectory lists companies known to ConnectWise.
type CompanyDirectory interface {
	Companies(ctx context.Context) ([]Company, error)
}
