package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEnvelopeShapes(t *testing.T) {
	errBody, err := json.Marshal(ErrorResponse("event not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"event not found"}`, string(errBody))

	okBody, err := json.Marshal(SuccessResponse(map[string]string{"id": "e1"}, "Event created successfully"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Event created successfully","data":{"id":"e1"}}`, string(okBody))

	paged := PaginatedResponse([]string{"a"}, 2, 10, 11)
	assert.True(t, paged.Success)
	assert.Equal(t, 2, paged.Page)
	assert.Equal(t, 11, paged.Total)
}
