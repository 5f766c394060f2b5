package refdata

import (
	"context"
)

// Service exposes the lookup catalogs with a Redis cache in front. The
// catalog itself is static per process but the cache keeps response
// shapes warm and lets multiple instances share one source of truth.
type Service struct {
	catalog *Catalog
	cache   *Cache
}

// NewService constructs a Service.
func NewService(catalog *Catalog, cache *Cache) *Service {
	return &Service{catalog: catalog, cache: cache}
}

// Catalog returns the underlying catalog for direct lookups.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// SalesCountries returns the distinct sales countries.
func (s *Service) SalesCountries(ctx context.Context) ([]SelectOption, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "sales-countries")
	if err != nil {
		return nil, err
	}
	var out []SelectOption
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.SalesCountries(), nil
	})
	return out, err
}

// SalesPicsByCountry returns active PICs filtered by country.
func (s *Service) SalesPicsByCountry(ctx context.Context, countryCode string) ([]SalesPicOption, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "sales-pics", countryCode)
	if err != nil {
		return nil, err
	}
	var out []SalesPicOption
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.SalesPicsByCountry(countryCode), nil
	})
	return out, err
}

// SearchPorts searches ports by type and keyword. Searches are not
// cached since the keyword space is unbounded.
func (s *Service) SearchPorts(ctx context.Context, portType PortType, keyword string) []PortOption {
	return s.catalog.SearchPorts(portType, keyword)
}

// ContainerTypes returns the container type options.
func (s *Service) ContainerTypes(ctx context.Context) ([]ContainerTypeOption, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "container-types")
	if err != nil {
		return nil, err
	}
	var out []ContainerTypeOption
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.ContainerTypes(), nil
	})
	return out, err
}

// CnOffices returns the CN office options.
func (s *Service) CnOffices(ctx context.Context) ([]SelectOption, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "cn-offices")
	if err != nil {
		return nil, err
	}
	var out []SelectOption
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.CnOffices(), nil
	})
	return out, err
}

// CargoTypes returns the active cargo types.
func (s *Service) CargoTypes(ctx context.Context) ([]CargoType, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "cargo-types")
	if err != nil {
		return nil, err
	}
	var out []CargoType
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.CargoTypes(), nil
	})
	return out, err
}

// Products returns the active products.
func (s *Service) Products(ctx context.Context) ([]Product, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "products")
	if err != nil {
		return nil, err
	}
	var out []Product
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.Products(), nil
	})
	return out, err
}

// Uoms returns the unit of measure options.
func (s *Service) Uoms(ctx context.Context) ([]SelectOption, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "uoms")
	if err != nil {
		return nil, err
	}
	var out []SelectOption
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.Uoms(), nil
	})
	return out, err
}

// Categories returns the category options.
func (s *Service) Categories(ctx context.Context) ([]SelectOption, error) {
	key, err := s.cache.BuildKey(ctx, "refdata", "categories")
	if err != nil {
		return nil, err
	}
	var out []SelectOption
	err = s.cache.FetchJSON(ctx, key, &out, func(context.Context) (interface{}, error) {
		return s.catalog.Categories(), nil
	})
	return out, err
}

// Invalidate bumps the cache version after a catalog reload.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}
