package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenGetBike(t *testing.T) {
	env := newTestEnv(t, envOptions{secret: testSecret})

	previous := env.createBike("RIFT Gravel", 3200)

	w := env.do(http.MethodPost, "/bikes", map[string]interface{}{
		"name":           "RIFT Aero",
		"description":    "Carbon endurance road bike",
		"basePrice":      "4700.50",
		"imageUrl":       "/bikes/aero/image-1.jpg",
		"videoUrl":       "",
		"specifications": map[string]interface{}{"frame": "Carbon"},
	}, env.adminHeader()...)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Bike
	decode(t, w, &created)
	assert.Greater(t, created.ID, previous)
	assert.Nil(t, created.VideoURL)

	w = env.do(http.MethodGet, fmt.Sprintf("/bikes/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Bike
	decode(t, w, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, decimal.RequireFromString("4700.50").Equal(got.BasePrice))
	assert.Equal(t, "Carbon", got.Specifications["frame"])
}

func TestSpecificationsSentAsTextRoundTrip(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/bikes",
		`{"name":"RIFT Climb","description":"E-MTB","basePrice":4499,"specifications":"{\"frame\":\"Carbon\"}"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Bike
	decode(t, w, &created)

	w = env.do(http.MethodGet, fmt.Sprintf("/bikes/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decode(t, w, &body)
	specs, ok := body["specifications"].(map[string]interface{})
	require.True(t, ok, "specifications should be an object")
	assert.Equal(t, "Carbon", specs["frame"])
}

func TestCreateBikeRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/bikes", map[string]interface{}{"name": "No price", "description": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/bikes", map[string]interface{}{"name": "Negative", "description": "x", "basePrice": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCreateBikeWithExportedSpecifications(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	specs := `{"model":"CYCLONE-3rd","specFile":"/home/tau/RIFT/new_bikes_extract/CYCLONE-3rd (105 big)-Specifications.xlsx",` +
		`"images":["/bikes/CYCLONE-3rd/image-1.jpg","/bikes/CYCLONE-3rd/image-2.jpg"],"Wheel Size":"700C"}`
	raw, err := json.Marshal(map[string]interface{}{
		"name":           "RIFT Rapid",
		"description":    "Aero road bike",
		"basePrice":      4700,
		"specifications": specs,
	})
	require.NoError(t, err)

	w := env.do(http.MethodPost, "/bikes", string(raw))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created domain.Bike
	decode(t, w, &created)

	w = env.do(http.MethodGet, fmt.Sprintf("/bikes/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Specifications map[string]interface{} `json:"specifications"`
	}
	decode(t, w, &body)
	var want map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(specs), &want))
	assert.Equal(t, want, body.Specifications)

	w = env.do(http.MethodPost, "/bikes", map[string]interface{}{
		"name": "Nested", "description": "x", "basePrice": 10,
		"specifications": map[string]interface{}{"sizes": []string{"S", "M"}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListBikesNewestFirst(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	first := env.createBike("RIFT Aero", 4700)
	second := env.createBike("RIFT Climb", 4499)

	w := env.do(http.MethodGet, "/bikes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []domain.Bike
	decode(t, w, &bikes)
	require.Len(t, bikes, 2)
	assert.Equal(t, second, bikes[0].ID)
	assert.Equal(t, first, bikes[1].ID)
}

func TestListBikesNeverFails(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/bikes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seeds []domain.Bike
	decode(t, w, &seeds)
	assert.Len(t, seeds, 2)

	require.NoError(t, env.store.Close())

	w = env.do(http.MethodGet, "/bikes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fallback []domain.Bike
	decode(t, w, &fallback)
	assert.Len(t, fallback, 2)
}

func TestListBikesWithoutFallback(t *testing.T) {
	env := newTestEnv(t, envOptions{noFallback: true})

	w := env.do(http.MethodGet, "/bikes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.NoError(t, env.store.Close())
	w = env.do(http.MethodGet, "/bikes", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch bikes"}`, w.Body.String())
}

func TestGetBikeNotFound(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/bikes/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Bike not found"}`, w.Body.String())

	w = env.do(http.MethodGet, "/bikes/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/bikes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/bikes/-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBikeOverwritesEveryField(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/bikes", map[string]interface{}{
		"name": "RIFT Aero", "description": "Road", "basePrice": 4700,
		"imageUrl": "/bikes/aero/image-1.jpg", "category": "Performance",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Bike
	decode(t, w, &created)

	w = env.do(http.MethodPut, fmt.Sprintf("/bikes/%d", created.ID), map[string]interface{}{
		"name": "RIFT Aero Pro", "description": "Road", "basePrice": 5100,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = env.do(http.MethodGet, fmt.Sprintf("/bikes/%d", created.ID), nil)
	var got domain.Bike
	decode(t, w, &got)
	assert.Equal(t, "RIFT Aero Pro", got.Name)
	assert.True(t, decimal.NewFromInt(5100).Equal(got.BasePrice))
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.Category)

	w = env.do(http.MethodPut, "/bikes/9999", map[string]interface{}{
		"name": "Ghost", "description": "None", "basePrice": 1,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteMissingBikeSucceeds(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	for _, path := range []string{"/bikes/9999", "/bikes/0"} {
		w := env.do(http.MethodDelete, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	}

	w := env.do(http.MethodPut, "/bikes/0", map[string]interface{}{
		"name": "Ghost", "description": "None", "basePrice": 1,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	id := env.createBike("RIFT Aero", 4700)
	w = env.do(http.MethodDelete, fmt.Sprintf("/bikes/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, fmt.Sprintf("/bikes/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	env := newTestEnv(t, envOptions{secret: testSecret})
	body := map[string]interface{}{"name": "RIFT Aero", "description": "Road", "basePrice": 4700}

	w := env.do(http.MethodPost, "/bikes", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/bikes", body, "Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	customer, err := env.tokens.CreateToken("jane@example.com", domain.UserRole("customer"))
	require.NoError(t, err)
	w = env.do(http.MethodDelete, "/bikes/1", nil, "Authorization", "Bearer "+customer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/bikes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/bikes", body, env.adminHeader()...)
	assert.Equal(t, http.StatusCreated, w.Code)
}
