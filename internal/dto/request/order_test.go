package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	cases := map[string]FlexString{
		`{"id":"A-17"}`: "A-17",
		`{"id":4821}`:   "4821",
		`{"id":null}`:   "",
		`{}`:            "",
	}

	for body, want := range cases {
		var req CreateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.ID, body)
	}

	var req CreateOrderRequest
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &req))
}
