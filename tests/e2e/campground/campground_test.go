//go:build e2e

package campground_test

import (
	"net/http"
	"testing"

	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/tests/common/dbtest"
	"campsite-booking/tests/common/httptest"
	"campsite-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const campgroundsURL = "/api/campgrounds"

type campgroundSuite struct {
	e2e.SharedSuite
}

func TestCampgroundSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(campgroundSuite))
}

func (s *campgroundSuite) seed() (ownerID, cgID uuid.UUID) {
	t := s.T()
	ownerID = dbtest.CreateTestUser(t, s.DB, "owner@example.com", "ranger", false)
	cgID = dbtest.CreateTestCampground(t, s.DB, "Granite Basin", 2000, ownerID)
	dbtest.CreateTestCampground(t, s.DB, "Alpine Meadow", 3500, ownerID)
	return ownerID, cgID
}

func (s *campgroundSuite) TestList() {
	s.Run("lists campgrounds by title without auth", func() {
		t := s.T()
		s.seed()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campgroundsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp []resdto.CampgroundResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)
		require.Len(t, resp, 2)
		require.Equal(t, "Alpine Meadow", resp[0].Title)
		require.Equal(t, "Granite Basin", resp[1].Title)
		require.Equal(t, "ranger", resp[0].OwnerUsername)
	})
}

func (s *campgroundSuite) TestGet() {
	s.Run("returns a campground by id", func() {
		t := s.T()
		ownerID, cgID := s.seed()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campgroundsURL+"/"+cgID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp resdto.CampgroundResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)
		require.Equal(t, "Granite Basin", resp.Title)
		require.Equal(t, int64(2000), resp.NightlyRateCents)
		require.Equal(t, ownerID, resp.OwnerID)
	})

	s.Run("unknown id", func() {
		t := s.T()
		s.seed()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campgroundsURL+"/"+uuid.NewString(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campgroundsURL+"/not-a-uuid", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
