package status

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestStatus_OK(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler().Register(api)

	resp := api.Get("/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "ok")
}

func TestStatus_BadMethod(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler().Register(api)

	resp := api.Post("/status")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
