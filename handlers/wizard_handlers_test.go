package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingWizardEndpoints(t *testing.T) {
	api := newTestAPI(t, testConfig(t))

	w := api.do(t, http.MethodPost, "/api/v1/bookings/drafts", map[string]string{"trekId": "ebc"})
	require.Equal(t, http.StatusCreated, w.Code)
	draft := decode(t, w)
	id := draft["id"].(string)
	assert.Equal(t, "personal_info", draft["step"])

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/next", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "name and email are required")

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/back", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(t, http.MethodPatch, "/api/v1/bookings/drafts/"+id, map[string]interface{}{
		"fullName":        "Dawa Sherpa",
		"email":           "dawa@example.com",
		"groupSize":       3,
		"groupPreference": "join_group",
		"paymentOption":   "deposit",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	draft = decode(t, w)
	assert.Equal(t, "review", draft["step"])
	assert.Equal(t, 614.09, draft["quote"].(map[string]interface{})["perPersonTotal"])

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "submit only from payment")

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts/"+id+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode(t, w)
	assert.Equal(t, "pending_payment", booking["status"])
	assert.Equal(t, "Dawa Sherpa", booking["fullName"])

	w = api.do(t, http.MethodGet, "/api/v1/bookings/"+booking["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 614.09, decode(t, w)["perPersonTotal"])

	w = api.do(t, http.MethodGet, "/api/v1/bookings/drafts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "submitted", decode(t, w)["step"])
}

func TestBookingDraftExpires(t *testing.T) {
	api := newTestAPI(t, testConfig(t))

	w := api.do(t, http.MethodPost, "/api/v1/bookings/drafts", map[string]string{"trekId": "ebc"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)

	api.redis.FastForward(2 * time.Hour)

	w = api.do(t, http.MethodGet, "/api/v1/bookings/drafts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Draft not found or expired", decode(t, w)["error"])
}

func TestStartBooking_Validation(t *testing.T) {
	api := newTestAPI(t, testConfig(t))

	w := api.do(t, http.MethodPost, "/api/v1/bookings/drafts", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/bookings/drafts", map[string]string{"trekId": "k2"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryDraftEndpoints(t *testing.T) {
	api := newTestAPI(t, testConfig(t))

	w := api.do(t, http.MethodPost, "/api/v1/treks/ebc/itinerary/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/itinerary/drafts/"+id+"/edits", map[string]interface{}{
		"edits": []map[string]interface{}{
			{"op": "insert", "day": map[string]interface{}{"title": "Gorak Shep", "altitude": 5164}},
			{"op": "reorder", "from": 2, "to": 0},
			{"op": "update", "dayId": "d1", "field": "highlights", "value": []string{"Tenzing-Hillary airport"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	days := decode(t, w)["days"].([]interface{})
	require.Len(t, days, 3)
	first := days[0].(map[string]interface{})
	assert.Equal(t, "Gorak Shep", first["title"])
	assert.Equal(t, 1.0, first["day"])

	w = api.do(t, http.MethodPost, "/api/v1/itinerary/drafts/"+id+"/edits", map[string]interface{}{
		"edits": []map[string]interface{}{{"op": "remove", "index": 7}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/itinerary/drafts/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	trek := api.store.treks["ebc"]
	require.Len(t, trek.Itinerary, 3)
	assert.Equal(t, "Gorak Shep", trek.Itinerary[0].Title)
	assert.Equal(t, []string{"Tenzing-Hillary airport"}, trek.Itinerary[1].Highlights)

	w = api.do(t, http.MethodGet, "/api/v1/itinerary/drafts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiscardItineraryDraft(t *testing.T) {
	api := newTestAPI(t, testConfig(t))

	w := api.do(t, http.MethodPost, "/api/v1/treks/ebc/itinerary/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)

	w = api.do(t, http.MethodDelete, "/api/v1/itinerary/drafts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/itinerary/drafts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, api.store.treks["ebc"].Itinerary, 2)
}

func TestApplyItineraryEdits_RemoveWithoutTarget(t *testing.T) {
	api := newTestAPI(t, testConfig(t))

	w := api.do(t, http.MethodPost, "/api/v1/treks/ebc/itinerary/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/itinerary/drafts/"+id+"/edits", map[string]interface{}{
		"edits": []map[string]interface{}{{"op": "remove"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/itinerary/drafts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["days"], 2)
}
