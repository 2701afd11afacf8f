package query

import "github.com/deppfellow/lightbnb/internal/model"

// averageRating is the aggregate both selected and filtered on.
const averageRating = "avg(property_reviews.rating)"

// PropertySearch builds the property listing query.
//
// Properties are left-joined with their reviews and grouped per property so
// each row carries average_rating. Filters are applied in a fixed order:
// city, owner, minimum price, maximum price, then minimum rating as a HAVING
// predicate. Prices are converted to minor units before binding. Rows are
// ordered by cost_per_night ascending and capped at limit (DefaultLimit when
// limit is not positive).
func PropertySearch(opts model.SearchOptions, limit int) Statement {
	b := Select("properties.*", averageRating+"::float8 AS average_rating").
		From("properties").
		LeftJoin("property_reviews", "properties.id = property_reviews.property_id")

	if opts.City != nil {
		b.Where("properties.city", Like, Contains(*opts.City))
	}
	if opts.OwnerID != nil {
		b.Where("properties.owner_id", Eq, *opts.OwnerID)
	}
	if opts.MinimumPricePerNight != nil {
		b.Where("properties.cost_per_night", Gte, model.ToMinorUnits(*opts.MinimumPricePerNight))
	}
	if opts.MaximumPricePerNight != nil {
		b.Where("properties.cost_per_night", Lte, model.ToMinorUnits(*opts.MaximumPricePerNight))
	}

	b.GroupBy("properties.id")

	if opts.MinimumRating != nil {
		b.Having(averageRating, Gte, *opts.MinimumRating)
	}

	return b.
		OrderBy("properties.cost_per_night ASC").
		Limit(model.NormalizeLimit(limit)).
		Build()
}
