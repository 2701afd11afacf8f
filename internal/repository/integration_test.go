package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// testDatabaseURLEnv points the integration suite at a disposable database.
const testDatabaseURLEnv = "LIGHTBNB_TEST_DATABASE_URL"

type IntegrationSuite struct {
	suite.Suite

	ctx   context.Context
	pool  *pgxpool.Pool
	repos *Repositories
}

func TestIntegrationSuite(t *testing.T) {
	if os.Getenv(testDatabaseURLEnv) == "" {
		t.Skipf("%s not set", testDatabaseURLEnv)
	}
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	url := os.Getenv(testDatabaseURLEnv)

	s.Require().NoError(database.MigrateURL(s.ctx, nopLogger(), url))

	pool, err := pgxpool.New(s.ctx, url)
	s.Require().NoError(err)
	s.pool = pool
	s.repos = NewRepositories(pool, nopLogger())
}

func (s *IntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *IntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx,
		`TRUNCATE users, properties, reservations, property_reviews RESTART IDENTITY CASCADE;`)
	s.Require().NoError(err)
}

func (s *IntegrationSuite) addUser(email string) *model.User {
	u, err := s.repos.Users.AddUser(s.ctx, model.NewUser{Name: "Guest", Email: email, Password: "hash"})
	s.Require().NoError(err)
	return u
}

func (s *IntegrationSuite) addProperty(ownerID int64, city string, cost int64) *model.Property {
	p, err := s.repos.Properties.AddProperty(s.ctx, model.NewProperty{
		OwnerID:           ownerID,
		Title:             city + " loft",
		ThumbnailPhotoURL: "thumb.jpg",
		CoverPhotoURL:     "cover.jpg",
		CostPerNight:      cost,
		Street:            "1 Main St",
		City:              city,
		Province:          "BC",
		PostCode:          "V5K",
		Country:           "Canada",
		NumberOfBedrooms:  2,
	})
	s.Require().NoError(err)
	return p
}

func (s *IntegrationSuite) TestGetUserWithEmail() {
	added := s.addUser("Exact@Example.com")

	_, err := s.repos.Users.GetUserWithEmail(s.ctx, "nobody@example.com")
	s.True(IsNotFound(err))

	_, err = s.repos.Users.GetUserWithEmail(s.ctx, "exact@example.com")
	s.True(IsNotFound(err), "email match is case-sensitive")

	got, err := s.repos.Users.GetUserWithEmail(s.ctx, "Exact@Example.com")
	s.Require().NoError(err)
	s.Equal(added, got)
}

func (s *IntegrationSuite) TestAddUserAssignsID() {
	u, err := s.repos.Users.AddUser(s.ctx, model.NewUser{Name: "Ann", Email: "ann@example.com", Password: "hash"})
	s.Require().NoError(err)

	s.NotZero(u.ID)
	s.Equal("Ann", u.Name)
	s.Equal("ann@example.com", u.Email)
	s.Equal("hash", u.Password)

	byID, err := s.repos.Users.GetUserWithID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(u, byID)
}

func (s *IntegrationSuite) TestGetAllPropertiesUnfilteredIsSortedAndLimited() {
	owner := s.addUser("owner@example.com")
	for _, cost := range []int64{30000, 9300, 12000, 4500, 20000, 7000} {
		s.addProperty(owner.ID, "Vancouver", cost)
	}

	got, err := s.repos.Properties.GetAllProperties(s.ctx, model.SearchOptions{}, 5)
	s.Require().NoError(err)

	s.Len(got, 5)
	for i := 1; i < len(got); i++ {
		s.LessOrEqual(got[i-1].CostPerNight, got[i].CostPerNight)
	}
}

func (s *IntegrationSuite) TestGetAllPropertiesFilters() {
	owner := s.addUser("owner@example.com")
	other := s.addUser("other@example.com")
	s.addProperty(owner.ID, "Vancouver", 4000)
	s.addProperty(owner.ID, "Vancouver", 9000)
	s.addProperty(other.ID, "North Vancouver", 15000)
	s.addProperty(other.ID, "Toronto", 10000)

	city := "Van"
	byCity, err := s.repos.Properties.GetAllProperties(s.ctx, model.SearchOptions{City: &city}, 10)
	s.Require().NoError(err)
	s.Len(byCity, 3)
	for _, p := range byCity {
		s.True(strings.Contains(p.City, "Van"), p.City)
	}

	minPrice, maxPrice := int64(50), int64(150)
	byPrice, err := s.repos.Properties.GetAllProperties(s.ctx, model.SearchOptions{
		MinimumPricePerNight: &minPrice,
		MaximumPricePerNight: &maxPrice,
	}, 10)
	s.Require().NoError(err)
	s.Len(byPrice, 3)
	for _, p := range byPrice {
		s.GreaterOrEqual(p.CostPerNight, int64(5000))
		s.LessOrEqual(p.CostPerNight, int64(15000))
	}

	byOwner, err := s.repos.Properties.GetAllProperties(s.ctx, model.SearchOptions{OwnerID: &other.ID}, 10)
	s.Require().NoError(err)
	s.Len(byOwner, 2)
}

func (s *IntegrationSuite) TestGetAllPropertiesMinimumRating() {
	guest := s.addUser("guest@example.com")
	good := s.addProperty(guest.ID, "Vancouver", 5000)
	poor := s.addProperty(guest.ID, "Vancouver", 6000)
	s.addProperty(guest.ID, "Vancouver", 7000)

	for _, r := range []struct {
		property *model.Property
		rating   int
	}{{good, 5}, {good, 4}, {poor, 2}} {
		res, err := s.repos.Reservations.AddReservation(s.ctx, model.NewReservation{
			GuestID:    guest.ID,
			PropertyID: r.property.ID,
			StartDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
		})
		s.Require().NoError(err)
		_, err = s.repos.Reviews.AddReview(s.ctx, model.NewPropertyReview{
			GuestID: guest.ID, PropertyID: r.property.ID, ReservationID: res.ID, Rating: r.rating,
		})
		s.Require().NoError(err)
	}

	rating := 4.0
	got, err := s.repos.Properties.GetAllProperties(s.ctx, model.SearchOptions{MinimumRating: &rating}, 10)
	s.Require().NoError(err)

	s.Require().Len(got, 1)
	s.Equal(good.ID, got[0].ID)
	s.Require().NotNil(got[0].AverageRating)
	s.InDelta(4.5, *got[0].AverageRating, 1e-9)
}

func (s *IntegrationSuite) TestAddReviewRatingRange() {
	guest := s.addUser("guest@example.com")
	property := s.addProperty(guest.ID, "Vancouver", 5000)
	res, err := s.repos.Reservations.AddReservation(s.ctx, model.NewReservation{
		GuestID:    guest.ID,
		PropertyID: property.ID,
		StartDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	for _, rating := range []int{0, 6} {
		_, err := s.repos.Reviews.AddReview(s.ctx, model.NewPropertyReview{
			GuestID: guest.ID, PropertyID: property.ID, ReservationID: res.ID, Rating: rating,
		})
		s.Equal(sqlerr.CheckViolation, sqlerr.ErrCode(err), "rating %d", rating)
	}

	_, err = s.repos.Reviews.AddReview(s.ctx, model.NewPropertyReview{
		GuestID: guest.ID, PropertyID: property.ID, ReservationID: res.ID, Rating: 1,
	})
	s.NoError(err)
}

func (s *IntegrationSuite) TestAddPropertyRoundTrip() {
	owner := s.addUser("owner@example.com")
	added := s.addProperty(owner.ID, "Kelowna", 8800)

	got, err := s.repos.Properties.GetAllProperties(s.ctx, model.SearchOptions{}, 10)
	s.Require().NoError(err)

	s.Require().Len(got, 1)
	s.Equal(*added, got[0].Property)
	s.Nil(got[0].AverageRating)
}

func (s *IntegrationSuite) TestAddPropertyUnknownOwnerFails() {
	_, err := s.repos.Properties.AddProperty(s.ctx, model.NewProperty{OwnerID: 999, Title: "x"})
	s.Error(err)
}

func (s *IntegrationSuite) TestGetAllReservationsOnlyPastSortedAndLimited() {
	guest := s.addUser("guest@example.com")
	property := s.addProperty(guest.ID, "Vancouver", 5000)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, offset := range []int{-30, -90, -60, 10} {
		start := today.AddDate(0, 0, offset)
		_, err := s.repos.Reservations.AddReservation(s.ctx, model.NewReservation{
			GuestID:    guest.ID,
			PropertyID: property.ID,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 3),
		})
		s.Require().NoError(err)
	}

	got, err := s.repos.Reservations.GetAllReservations(s.ctx, guest.ID, 2)
	s.Require().NoError(err)

	s.Require().Len(got, 2)
	s.True(got[0].StartDate.Before(got[1].StartDate))
	for _, r := range got {
		s.True(r.EndDate.Before(today))
		s.Equal(property.ID, r.Property.ID)
	}

	all, err := s.repos.Reservations.GetAllReservations(s.ctx, guest.ID, 10)
	s.Require().NoError(err)
	s.Len(all, 3)
}
